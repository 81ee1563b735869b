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

const entityMoneyDonation = "money donation"

// RewardPolicy converts verified donation amounts into eco points.
type RewardPolicy struct {
	Unit          int64
	PointsPerUnit int64
}

// DefaultRewardPolicy awards 10 points per 100 units.
var DefaultRewardPolicy = RewardPolicy{Unit: 100, PointsPerUnit: 10}

func (p RewardPolicy) Points(amount int64) int64 {
	return domain.RewardPoints(amount, p.Unit, p.PointsPerUnit)
}

// MoneyDonationServiceImpl implements ports.MoneyDonationService.
type MoneyDonationServiceImpl struct {
	donations  ports.MoneyDonationRepository
	users      ports.UserRepository
	ledger     ports.FundLedger
	outbox     ports.OutboxRepository
	audit      adminAuditor
	transactor ports.DBTransactor
	rewards    RewardPolicy
	log        zerolog.Logger
}

func NewMoneyDonationService(
	donations ports.MoneyDonationRepository,
	users ports.UserRepository,
	ledger ports.FundLedger,
	outbox ports.OutboxRepository,
	actions ports.AdminActionRepository,
	transactor ports.DBTransactor,
	rewards RewardPolicy,
	log zerolog.Logger,
) *MoneyDonationServiceImpl {
	return &MoneyDonationServiceImpl{
		donations:  donations,
		users:      users,
		ledger:     ledger,
		outbox:     outbox,
		audit:      adminAuditor{repo: actions, log: log},
		transactor: transactor,
		rewards:    rewards,
		log:        log,
	}
}

// Submit records a pending donation and alerts the administrators.
func (s *MoneyDonationServiceImpl) Submit(ctx context.Context, req ports.SubmitDonationRequest) (*domain.MoneyDonation, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	method := strings.TrimSpace(req.PaymentMethod)
	if method == "" {
		return nil, apperror.Validation("payment method is required")
	}

	donor, err := s.users.GetByID(ctx, req.DonorID)
	if err != nil {
		return nil, apperror.FromStorage("get donor", err)
	}
	if donor == nil {
		return nil, apperror.ErrNotFound("donor")
	}
	if !donor.Role.CanDonateMoney() {
		return nil, apperror.ErrIneligibleRole(string(donor.Role))
	}

	donation := &domain.MoneyDonation{
		ID:                    uuid.New(),
		DonorID:               donor.ID,
		DonorRole:             donor.Role,
		Amount:                req.Amount,
		PaymentMethod:         method,
		ExternalTransactionID: trimmedPtr(req.ExternalTransactionID),
		ProofRef:              trimmedPtr(req.ProofRef),
		Notes:                 trimmedPtr(req.Notes),
		Status:                domain.MoneyDonationPending,
		CreatedAt:             time.Now().UTC(),
	}

	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.donations.Create(ctx, dbTx, donation); err != nil {
		return nil, apperror.FromStorage("create money donation", err)
	}
	if err := enqueue(ctx, s.outbox, dbTx, notifyAdmins(
		domain.NotificationDonationSubmitted,
		"New money donation",
		fmt.Sprintf("%s submitted a donation of %d via %s", donor.Name, donation.Amount, method),
		map[string]any{"donation_id": donation.ID, "donor_id": donor.ID, "amount": donation.Amount},
	)); err != nil {
		return nil, err
	}
	if err := commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("donation_id", donation.ID.String()).
		Str("donor_id", donor.ID.String()).
		Int64("amount", donation.Amount).
		Msg("money donation submitted")
	return donation, nil
}

// Approve completes a pending donation: the fund is credited, the donor earns
// eco points and the decision is audited, all in one transaction. A second
// approval finds the row completed and fails before any side effect.
func (s *MoneyDonationServiceImpl) Approve(ctx context.Context, id, adminID uuid.UUID) (*ports.DonationApproval, error) {
	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	donation, err := s.donations.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, apperror.FromStorage("lock money donation", err)
	}
	if donation == nil {
		return nil, apperror.ErrNotFound(entityMoneyDonation)
	}

	from := donation.Status
	next, err := from.Approve()
	if err != nil {
		return nil, fromTransition(entityMoneyDonation, err)
	}

	donationID := donation.ID
	record, err := s.ledger.CreditTx(ctx, dbTx, domain.LedgerEntry{
		Amount:            donation.Amount,
		ActorUserID:       adminID,
		RelatedDonationID: &donationID,
		Category:          domain.CategoryMoneyDonation,
		Description:       fmt.Sprintf("Money donation %s via %s", donation.ID, donation.PaymentMethod),
	})
	if err != nil {
		return nil, err
	}

	points := s.rewards.Points(donation.Amount)
	if points > 0 {
		if err := s.users.AddEcoPoints(ctx, dbTx, donation.DonorID, points); err != nil {
			return nil, apperror.FromStorage("credit eco points", err)
		}
	}

	now := time.Now().UTC()
	donation.Status = next
	donation.VerifiedBy = &adminID
	donation.VerifiedAt = &now
	if err := s.donations.Transition(ctx, dbTx, donation, from); err != nil {
		return nil, fromConditionalUpdate(entityMoneyDonation, "approve money donation", err)
	}

	if err := s.audit.Record(ctx, dbTx, adminID, domain.AdminActionApproveDonation, "money_donation", donation.ID, map[string]any{
		"amount":             donation.Amount,
		"eco_points_awarded": points,
		"transaction_id":     record.ID,
	}); err != nil {
		return nil, err
	}

	if err := enqueue(ctx, s.outbox, dbTx, notifyUser(
		donation.DonorID,
		domain.NotificationDonationApproved,
		"Donation verified",
		fmt.Sprintf("Your donation of %d was verified. You earned %d eco points.", donation.Amount, points),
		map[string]any{"donation_id": donation.ID, "amount": donation.Amount, "eco_points": points},
	)); err != nil {
		return nil, err
	}

	if err := commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("donation_id", donation.ID.String()).
		Str("admin_id", adminID.String()).
		Int64("amount", donation.Amount).
		Int64("eco_points", points).
		Msg("money donation approved")

	return &ports.DonationApproval{EcoPointsAwarded: points, Transaction: record}, nil
}

func (s *MoneyDonationServiceImpl) Reject(ctx context.Context, id, adminID uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperror.Validation("rejection reason is required")
	}

	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	donation, err := s.donations.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return apperror.FromStorage("lock money donation", err)
	}
	if donation == nil {
		return apperror.ErrNotFound(entityMoneyDonation)
	}

	from := donation.Status
	next, err := from.Reject()
	if err != nil {
		return fromTransition(entityMoneyDonation, err)
	}

	now := time.Now().UTC()
	donation.Status = next
	donation.RejectionReason = &reason
	donation.ReviewRequested = false
	donation.VerifiedBy = &adminID
	donation.VerifiedAt = &now
	if err := s.donations.Transition(ctx, dbTx, donation, from); err != nil {
		return fromConditionalUpdate(entityMoneyDonation, "reject money donation", err)
	}

	if err := s.audit.Record(ctx, dbTx, adminID, domain.AdminActionRejectDonation, "money_donation", donation.ID, map[string]any{
		"reason": reason,
	}); err != nil {
		return err
	}

	if err := enqueue(ctx, s.outbox, dbTx, notifyUser(
		donation.DonorID,
		domain.NotificationDonationRejected,
		"Donation rejected",
		fmt.Sprintf("Your donation of %d was rejected: %s", donation.Amount, reason),
		map[string]any{"donation_id": donation.ID, "reason": reason},
	)); err != nil {
		return err
	}

	if err := commit(ctx, dbTx); err != nil {
		return err
	}

	s.log.Info().
		Str("donation_id", donation.ID.String()).
		Str("admin_id", adminID.String()).
		Msg("money donation rejected")
	return nil
}

// RequestReview lets the donor reopen a rejected donation.
func (s *MoneyDonationServiceImpl) RequestReview(ctx context.Context, id, donorID uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperror.Validation("review reason is required")
	}

	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	donation, err := s.donations.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return apperror.FromStorage("lock money donation", err)
	}
	if donation == nil {
		return apperror.ErrNotFound(entityMoneyDonation)
	}
	if donation.DonorID != donorID {
		return apperror.ErrForbidden("only the donor may request a review")
	}

	from := donation.Status
	next, err := from.Reopen()
	if err != nil {
		return apperror.ErrInvalidState("only rejected donations can be reviewed")
	}

	donation.Status = next
	donation.ReviewRequested = true
	donation.ReviewReason = &reason
	if err := s.donations.Transition(ctx, dbTx, donation, from); err != nil {
		return fromConditionalUpdate(entityMoneyDonation, "reopen money donation", err)
	}

	if err := enqueue(ctx, s.outbox, dbTx, notifyAdmins(
		domain.NotificationDonationReviewRequest,
		"Donation review requested",
		fmt.Sprintf("Donor asked to review donation %s: %s", donation.ID, reason),
		map[string]any{"donation_id": donation.ID, "donor_id": donorID, "reason": reason},
	)); err != nil {
		return err
	}

	if err := commit(ctx, dbTx); err != nil {
		return err
	}

	s.log.Info().
		Str("donation_id", donation.ID.String()).
		Str("donor_id", donorID.String()).
		Msg("money donation review requested")
	return nil
}

func (s *MoneyDonationServiceImpl) ListPending(ctx context.Context) ([]domain.MoneyDonation, error) {
	donations, err := s.donations.ListAwaitingReview(ctx)
	if err != nil {
		return nil, apperror.FromStorage("list pending donations", err)
	}
	return donations, nil
}

func (s *MoneyDonationServiceImpl) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]domain.MoneyDonation, error) {
	donations, err := s.donations.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, apperror.FromStorage("list donor donations", err)
	}
	return donations, nil
}

func (s *MoneyDonationServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoneyDonation, error) {
	donation, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStorage("get money donation", err)
	}
	if donation == nil {
		return nil, apperror.ErrNotFound(entityMoneyDonation)
	}
	return donation, nil
}
