package service

import (
	"context"
	"errors"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HandoffServiceImpl implements ports.HandoffService. Each side sets its own
// flag under a row lock; whichever call sets the second flag completes the
// donation.
type HandoffServiceImpl struct {
	donations  ports.PhysicalDonationRepository
	outbox     ports.OutboxRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

func NewHandoffService(
	donations ports.PhysicalDonationRepository,
	outbox ports.OutboxRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *HandoffServiceImpl {
	return &HandoffServiceImpl{
		donations:  donations,
		outbox:     outbox,
		transactor: transactor,
		log:        log,
	}
}

func (s *HandoffServiceImpl) ConfirmSent(ctx context.Context, donationID, callerID uuid.UUID) (*domain.PhysicalDonation, error) {
	return s.confirm(ctx, donationID, func(d *domain.PhysicalDonation) (bool, error) {
		if d.DonorID != callerID {
			return false, apperror.ErrForbidden("only the donor may confirm sending")
		}
		return d.ConfirmSent()
	})
}

func (s *HandoffServiceImpl) ConfirmReceived(ctx context.Context, donationID, callerID uuid.UUID) (*domain.PhysicalDonation, error) {
	return s.confirm(ctx, donationID, func(d *domain.PhysicalDonation) (bool, error) {
		if !d.IsClaimant(callerID) {
			return false, apperror.ErrForbidden("only the claimant may confirm receipt")
		}
		return d.ConfirmReceived()
	})
}

func (s *HandoffServiceImpl) confirm(
	ctx context.Context,
	donationID uuid.UUID,
	apply func(*domain.PhysicalDonation) (bool, error),
) (*domain.PhysicalDonation, error) {
	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	donation, err := s.donations.GetByIDForUpdate(ctx, dbTx, donationID)
	if err != nil {
		return nil, apperror.FromStorage("lock donation", err)
	}
	if donation == nil {
		return nil, apperror.ErrNotFound("donation")
	}

	wasCompleted := donation.Status == domain.HandoffCompleted
	changed, err := apply(donation)
	if err != nil {
		var transitionErr *domain.TransitionError
		if errors.As(err, &transitionErr) {
			return nil, apperror.ErrHandoffNotActive(transitionErr.From)
		}
		return nil, err
	}
	if !changed {
		return donation, nil
	}

	if err := s.donations.UpdateHandoff(ctx, dbTx, donation); err != nil {
		return nil, apperror.FromStorage("update handoff", err)
	}

	completed := !wasCompleted && donation.Status == domain.HandoffCompleted
	if completed {
		payload := map[string]any{"donation_id": donation.ID}
		if err := enqueue(ctx, s.outbox, dbTx, notifyUser(
			donation.DonorID,
			domain.NotificationHandoffCompleted,
			"Handoff completed",
			"Both parties confirmed the handoff of your donation.",
			payload,
		)); err != nil {
			return nil, err
		}
		if donation.ClaimantID != nil {
			if err := enqueue(ctx, s.outbox, dbTx, notifyUser(
				*donation.ClaimantID,
				domain.NotificationHandoffCompleted,
				"Handoff completed",
				"Both parties confirmed the handoff of the donation you claimed.",
				payload,
			)); err != nil {
				return nil, err
			}
		}
	}

	if err := commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("donation_id", donation.ID.String()).
		Bool("sender_confirmed", donation.SenderConfirmed).
		Bool("receiver_confirmed", donation.ReceiverConfirmed).
		Str("status", string(donation.Status)).
		Msg("handoff confirmation recorded")
	return donation, nil
}
