package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const entityMoneyRequest = domain.EntityMoneyRequest

// MoneyRequestServiceImpl implements ports.MoneyRequestService.
type MoneyRequestServiceImpl struct {
	requests   ports.MoneyRequestRepository
	users      ports.UserRepository
	accounts   ports.BankAccountRepository
	ledger     ports.FundLedger
	outbox     ports.OutboxRepository
	audit      adminAuditor
	transactor ports.DBTransactor
	encSvc     ports.EncryptionService
	log        zerolog.Logger
}

func NewMoneyRequestService(
	requests ports.MoneyRequestRepository,
	users ports.UserRepository,
	accounts ports.BankAccountRepository,
	ledger ports.FundLedger,
	outbox ports.OutboxRepository,
	actions ports.AdminActionRepository,
	transactor ports.DBTransactor,
	encSvc ports.EncryptionService,
	log zerolog.Logger,
) *MoneyRequestServiceImpl {
	return &MoneyRequestServiceImpl{
		requests:   requests,
		users:      users,
		accounts:   accounts,
		ledger:     ledger,
		outbox:     outbox,
		audit:      adminAuditor{repo: actions, log: log},
		transactor: transactor,
		encSvc:     encSvc,
		log:        log,
	}
}

// Submit records a pending request from a beneficiary.
func (s *MoneyRequestServiceImpl) Submit(ctx context.Context, req ports.SubmitMoneyRequest) (*domain.MoneyRequest, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		return nil, apperror.Validation("purpose is required")
	}
	if req.Distance != nil && req.Distance.IsNegative() {
		return nil, apperror.Validation("distance must not be negative")
	}
	if req.TransportRate != nil && req.TransportRate.IsNegative() {
		return nil, apperror.Validation("transport rate must not be negative")
	}

	requester, err := s.users.GetByID(ctx, req.RequesterID)
	if err != nil {
		return nil, apperror.FromStorage("get requester", err)
	}
	if requester == nil {
		return nil, apperror.ErrNotFound("requester")
	}
	if !requester.Role.IsBeneficiary() {
		return nil, apperror.ErrIneligibleRole(string(requester.Role))
	}

	request := &domain.MoneyRequest{
		ID:            uuid.New(),
		RequesterID:   requester.ID,
		RequesterRole: requester.Role,
		Amount:        req.Amount,
		Purpose:       purpose,
		Distance:      req.Distance,
		TransportRate: req.TransportRate,
		Status:        domain.MoneyRequestPending,
		CreatedAt:     time.Now().UTC(),
	}

	payload := map[string]any{"request_id": request.ID, "requester_id": requester.ID, "amount": request.Amount}
	if cost := request.TransportCost(); cost != nil {
		payload["transport_cost"] = *cost
	}

	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.requests.Create(ctx, dbTx, request); err != nil {
		return nil, apperror.FromStorage("create money request", err)
	}
	if err := enqueue(ctx, s.outbox, dbTx, notifyAdmins(
		domain.NotificationRequestSubmitted,
		"New money request",
		fmt.Sprintf("%s (%s) requested %d: %s", requester.Name, requester.Role, request.Amount, purpose),
		payload,
	)); err != nil {
		return nil, err
	}
	if err := commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("request_id", request.ID.String()).
		Str("requester_id", requester.ID.String()).
		Int64("amount", request.Amount).
		Msg("money request submitted")
	return request, nil
}

// Approve pays out a pending request. The request row is locked first, then
// the fund row inside DebitTx; if the fund cannot cover the amount the whole
// transaction rolls back and nothing is written.
func (s *MoneyRequestServiceImpl) Approve(ctx context.Context, req ports.ApproveMoneyRequest) (*ports.RequestApproval, error) {
	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	request, err := s.requests.GetByIDForUpdate(ctx, dbTx, req.RequestID)
	if err != nil {
		return nil, apperror.FromStorage("lock money request", err)
	}
	if request == nil {
		return nil, apperror.ErrNotFound(entityMoneyRequest)
	}

	from := request.Status
	next, err := from.Approve()
	if err != nil {
		return nil, fromTransition(entityMoneyRequest, err)
	}

	account, err := s.accounts.GetByID(ctx, req.BankAccountID)
	if err != nil {
		return nil, apperror.FromStorage("get bank account", err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("bank account")
	}
	if account.OwnerUserID != request.RequesterID {
		return nil, apperror.Validation("bank account does not belong to the requester")
	}
	if !account.IsActive() {
		return nil, apperror.Validation("bank account is not active")
	}

	accountType := strings.TrimSpace(req.AccountType)
	if accountType == "" {
		accountType = account.AccountType
	}

	record, err := s.ledger.DebitTx(ctx, dbTx, domain.LedgerEntry{
		Amount:      request.Amount,
		ActorUserID: req.AdminID,
		Category:    domain.CategoryMoneyRequest,
		Description: fmt.Sprintf("Money request %s paid to %s %s (%s, %s)",
			request.ID, account.BankName, account.MaskedNumber(), accountType, account.AccountHolderName),
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	accountID := account.ID
	request.Status = next
	request.ReviewedBy = &req.AdminID
	request.ReviewedAt = &now
	request.BankAccountID = &accountID
	request.WithdrawalProofRef = trimmedPtr(&req.WithdrawalProofRef)
	if err := s.requests.Transition(ctx, dbTx, request, from); err != nil {
		return nil, fromConditionalUpdate(entityMoneyRequest, "approve money request", err)
	}

	if err := s.audit.Record(ctx, dbTx, req.AdminID, domain.AdminActionApproveRequest, "money_request", request.ID, map[string]any{
		"amount":          request.Amount,
		"bank_account_id": account.ID,
		"account_type":    accountType,
		"transaction_id":  record.ID,
	}); err != nil {
		return nil, err
	}

	number := s.displayNumber(account)
	if err := enqueue(ctx, s.outbox, dbTx, notifyUser(
		request.RequesterID,
		domain.NotificationRequestApproved,
		"Money request approved",
		fmt.Sprintf("Your request for %d was approved and sent to %s %s (%s).", request.Amount, account.BankName, number, accountType),
		map[string]any{
			"request_id":     request.ID,
			"amount":         request.Amount,
			"bank_name":      account.BankName,
			"account_number": number,
			"account_type":   accountType,
			"proof_ref":      request.WithdrawalProofRef,
		},
	)); err != nil {
		return nil, err
	}

	if err := commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("request_id", request.ID.String()).
		Str("admin_id", req.AdminID.String()).
		Int64("amount", request.Amount).
		Msg("money request approved")

	return &ports.RequestApproval{TransferredAmount: request.Amount, Transaction: record}, nil
}

// displayNumber reveals the full account number to its owner; a decryption
// failure falls back to the masked form rather than blocking the payout.
func (s *MoneyRequestServiceImpl) displayNumber(account *domain.BankAccount) string {
	if account.AccountNumberEnc == "" {
		return account.MaskedNumber()
	}
	plain, err := s.encSvc.Decrypt(account.AccountNumberEnc)
	if err != nil {
		s.log.Warn().Err(err).Str("bank_account_id", account.ID.String()).Msg("failed to decrypt account number")
		return account.MaskedNumber()
	}
	return plain
}

func (s *MoneyRequestServiceImpl) Reject(ctx context.Context, id, adminID uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperror.Validation("rejection reason is required")
	}

	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	request, err := s.requests.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return apperror.FromStorage("lock money request", err)
	}
	if request == nil {
		return apperror.ErrNotFound(entityMoneyRequest)
	}

	from := request.Status
	next, err := from.Reject()
	if err != nil {
		return fromTransition(entityMoneyRequest, err)
	}

	now := time.Now().UTC()
	request.Status = next
	request.RejectionReason = &reason
	request.ReviewedBy = &adminID
	request.ReviewedAt = &now
	if err := s.requests.Transition(ctx, dbTx, request, from); err != nil {
		return fromConditionalUpdate(entityMoneyRequest, "reject money request", err)
	}

	if err := s.audit.Record(ctx, dbTx, adminID, domain.AdminActionRejectRequest, "money_request", request.ID, map[string]any{
		"reason": reason,
	}); err != nil {
		return err
	}

	if err := enqueue(ctx, s.outbox, dbTx, notifyUser(
		request.RequesterID,
		domain.NotificationRequestRejected,
		"Money request rejected",
		fmt.Sprintf("Your request for %d was rejected: %s", request.Amount, reason),
		map[string]any{"request_id": request.ID, "reason": reason},
	)); err != nil {
		return err
	}

	if err := commit(ctx, dbTx); err != nil {
		return err
	}

	s.log.Info().
		Str("request_id", request.ID.String()).
		Str("admin_id", adminID.String()).
		Msg("money request rejected")
	return nil
}

func (s *MoneyRequestServiceImpl) List(ctx context.Context, filter domain.MoneyRequestFilter) ([]domain.MoneyRequest, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("invalid status %q", *filter.Status))
	}
	requests, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, apperror.FromStorage("list money requests", err)
	}
	return requests, nil
}

func (s *MoneyRequestServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoneyRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStorage("get money request", err)
	}
	if request == nil {
		return nil, apperror.ErrNotFound(entityMoneyRequest)
	}
	return request, nil
}

// Stats returns per-status totals with the current fund snapshot.
func (s *MoneyRequestServiceImpl) Stats(ctx context.Context) (*domain.MoneyRequestStats, error) {
	stats, err := s.requests.Stats(ctx)
	if err != nil {
		return nil, apperror.FromStorage("money request stats", err)
	}
	fund, err := s.ledger.Balance(ctx)
	if err != nil {
		return nil, err
	}
	stats.Fund = *fund
	return stats, nil
}
