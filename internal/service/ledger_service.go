package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var errFundRowMissing = errors.New("fund balance row missing")

// FundLedgerService implements ports.FundLedger. Every mutation locks the
// singleton fund row, applies the change and appends exactly one
// FinancialTransaction inside the same database transaction.
type FundLedgerService struct {
	fundRepo   ports.FundRepository
	recordRepo ports.FinancialTransactionRepository
	transactor ports.DBTransactor
	audit      adminAuditor
	log        zerolog.Logger
}

func NewFundLedgerService(
	fundRepo ports.FundRepository,
	recordRepo ports.FinancialTransactionRepository,
	actionRepo ports.AdminActionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *FundLedgerService {
	return &FundLedgerService{
		fundRepo:   fundRepo,
		recordRepo: recordRepo,
		transactor: transactor,
		audit:      adminAuditor{repo: actionRepo, log: log},
		log:        log,
	}
}

// Credit adds entry.Amount to the fund in its own transaction.
func (s *FundLedgerService) Credit(ctx context.Context, entry domain.LedgerEntry) (*domain.FinancialTransaction, error) {
	return s.standalone(ctx, func(tx pgx.Tx) (*domain.FinancialTransaction, error) {
		return s.CreditTx(ctx, tx, entry)
	})
}

// Debit removes entry.Amount from the fund in its own transaction.
func (s *FundLedgerService) Debit(ctx context.Context, entry domain.LedgerEntry) (*domain.FinancialTransaction, error) {
	return s.standalone(ctx, func(tx pgx.Tx) (*domain.FinancialTransaction, error) {
		return s.DebitTx(ctx, tx, entry)
	})
}

func (s *FundLedgerService) CreditTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.FinancialTransaction, error) {
	return s.apply(ctx, tx, domain.TransactionKindDonation, entry)
}

func (s *FundLedgerService) DebitTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.FinancialTransaction, error) {
	return s.apply(ctx, tx, domain.TransactionKindWithdrawal, entry)
}

func (s *FundLedgerService) standalone(ctx context.Context, fn func(pgx.Tx) (*domain.FinancialTransaction, error)) (*domain.FinancialTransaction, error) {
	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	record, err := fn(dbTx)
	if err != nil {
		return nil, err
	}
	if err := commit(ctx, dbTx); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *FundLedgerService) apply(ctx context.Context, tx pgx.Tx, kind domain.TransactionKind, entry domain.LedgerEntry) (*domain.FinancialTransaction, error) {
	if entry.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !entry.Category.Valid() {
		return nil, apperror.ErrInvalidCategory(string(entry.Category))
	}

	fund, err := s.fundRepo.GetForUpdate(ctx, tx)
	if err != nil {
		return nil, apperror.FromStorage("lock fund", err)
	}
	if fund == nil {
		return nil, apperror.InternalError(errFundRowMissing)
	}

	now := time.Now().UTC()
	var next domain.FundBalance
	switch kind {
	case domain.TransactionKindDonation:
		next = fund.Credited(entry.Amount, now)
	default:
		if fund.TotalBalance < entry.Amount {
			return nil, apperror.ErrInsufficientFunds(fund.TotalBalance, entry.Amount)
		}
		next = fund.Debited(entry.Amount, now)
	}

	if err := s.fundRepo.Update(ctx, tx, &next); err != nil {
		return nil, apperror.FromStorage("update fund", err)
	}

	record := &domain.FinancialTransaction{
		ID:                uuid.New(),
		Kind:              kind,
		Amount:            entry.Amount,
		ActorUserID:       entry.ActorUserID,
		RelatedDonationID: entry.RelatedDonationID,
		Category:          entry.Category,
		Description:       entry.Description,
		CreatedAt:         now,
	}
	if err := s.recordRepo.Create(ctx, tx, record); err != nil {
		return nil, apperror.FromStorage("append financial transaction", err)
	}
	return record, nil
}

// Balance returns the current fund snapshot. A fresh fund reads as zero.
func (s *FundLedgerService) Balance(ctx context.Context) (*domain.FundBalance, error) {
	fund, err := s.fundRepo.Get(ctx)
	if err != nil {
		return nil, apperror.FromStorage("get fund", err)
	}
	if fund == nil {
		return &domain.FundBalance{}, nil
	}
	return fund, nil
}

func (s *FundLedgerService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialTransaction, int64, error) {
	if filter.Kind != nil && !filter.Kind.Valid() {
		return nil, 0, apperror.Validation(fmt.Sprintf("invalid kind %q", *filter.Kind))
	}
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, 0, apperror.ErrInvalidCategory(string(*filter.Category))
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	records, total, err := s.recordRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperror.FromStorage("list financial transactions", err)
	}
	return records, total, nil
}

// Adjust applies an admin correction as a manual_adjustment record and logs
// the admin action in the same transaction.
func (s *FundLedgerService) Adjust(ctx context.Context, req ports.AdjustmentRequest) (*domain.FinancialTransaction, error) {
	if !req.Kind.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("invalid kind %q", req.Kind))
	}
	if req.Description == "" {
		return nil, apperror.Validation("description is required")
	}

	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	record, err := s.apply(ctx, dbTx, req.Kind, domain.LedgerEntry{
		Amount:      req.Amount,
		ActorUserID: req.AdminID,
		Category:    domain.CategoryManualAdjustment,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, dbTx, req.AdminID, domain.AdminActionFundAdjustment, "financial_transaction", record.ID, map[string]any{
		"kind":        req.Kind,
		"amount":      req.Amount,
		"description": req.Description,
	}); err != nil {
		return nil, err
	}

	if err := commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("admin_id", req.AdminID.String()).
		Str("kind", string(req.Kind)).
		Int64("amount", req.Amount).
		Msg("fund adjusted")
	return record, nil
}

// Verify recomputes the totals from the transaction records while holding the
// fund lock, so no mutation can land between the two reads.
func (s *FundLedgerService) Verify(ctx context.Context) (*ports.LedgerReport, error) {
	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	fund, err := s.fundRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.FromStorage("lock fund", err)
	}
	if fund == nil {
		return nil, apperror.InternalError(errFundRowMissing)
	}

	totals, err := s.recordRepo.Totals(ctx)
	if err != nil {
		return nil, apperror.FromStorage("recompute totals", err)
	}

	report := &ports.LedgerReport{
		Balance:    *fund,
		Recomputed: *totals,
		Consistent: fund.Consistent() &&
			fund.TotalDonations == totals.Donations &&
			fund.TotalWithdrawals == totals.Withdrawals,
	}
	return report, nil
}
