package postgres

import (
	"context"
	"errors"
	"fmt"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PhysicalDonationRepo implements ports.PhysicalDonationRepository.
type PhysicalDonationRepo struct {
	pool Pool
}

// NewPhysicalDonationRepo creates a new PhysicalDonationRepo.
func NewPhysicalDonationRepo(pool Pool) *PhysicalDonationRepo {
	return &PhysicalDonationRepo{pool: pool}
}

// GetByIDForUpdate fetches a donation's handoff state and locks the row.
func (r *PhysicalDonationRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PhysicalDonation, error) {
	query := `SELECT id, donor_id, claimant_id, status, sender_confirmed, receiver_confirmed
		FROM physical_donations WHERE id = $1 FOR UPDATE`

	d := &domain.PhysicalDonation{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.DonorID, &d.ClaimantID, &d.Status, &d.SenderConfirmed, &d.ReceiverConfirmed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock physical donation: %w", err)
	}
	return d, nil
}

// UpdateHandoff writes the confirmation flags and status. Flags only move
// from false to true.
func (r *PhysicalDonationRepo) UpdateHandoff(ctx context.Context, tx pgx.Tx, d *domain.PhysicalDonation) error {
	query := `UPDATE physical_donations
		SET sender_confirmed = sender_confirmed OR $1,
			receiver_confirmed = receiver_confirmed OR $2,
			status = $3, updated_at = NOW()
		WHERE id = $4`

	tag, err := tx.Exec(ctx, query, d.SenderConfirmed, d.ReceiverConfirmed, d.Status, d.ID)
	if err != nil {
		return fmt.Errorf("update handoff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("physical donation not found: %s", d.ID)
	}
	return nil
}
