package postgres

import (
	"context"
	"errors"
	"fmt"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const moneyDonationColumns = `id, donor_id, donor_role, amount, payment_method, external_transaction_id,
	proof_ref, notes, status, rejection_reason, review_requested, review_reason,
	verified_by, verified_at, created_at`

// MoneyDonationRepo implements ports.MoneyDonationRepository.
type MoneyDonationRepo struct {
	pool Pool
}

// NewMoneyDonationRepo creates a new MoneyDonationRepo.
func NewMoneyDonationRepo(pool Pool) *MoneyDonationRepo {
	return &MoneyDonationRepo{pool: pool}
}

// Create inserts a new donation within tx.
func (r *MoneyDonationRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.MoneyDonation) error {
	query := `INSERT INTO money_donations (` + moneyDonationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := tx.Exec(ctx, query,
		d.ID, d.DonorID, d.DonorRole, d.Amount, d.PaymentMethod, d.ExternalTransactionID,
		d.ProofRef, d.Notes, d.Status, d.RejectionReason, d.ReviewRequested, d.ReviewReason,
		d.VerifiedBy, d.VerifiedAt, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert money donation: %w", err)
	}
	return nil
}

// GetByID fetches a donation without locking.
func (r *MoneyDonationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoneyDonation, error) {
	query := `SELECT ` + moneyDonationColumns + ` FROM money_donations WHERE id = $1`
	return scanMoneyDonation(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a donation and locks its row until tx ends.
func (r *MoneyDonationRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.MoneyDonation, error) {
	query := `SELECT ` + moneyDonationColumns + ` FROM money_donations WHERE id = $1 FOR UPDATE`
	return scanMoneyDonation(tx.QueryRow(ctx, query, id))
}

// Transition persists the donation's mutable fields only if its stored status
// is still from.
func (r *MoneyDonationRepo) Transition(ctx context.Context, tx pgx.Tx, d *domain.MoneyDonation, from domain.MoneyDonationStatus) error {
	query := `UPDATE money_donations
		SET status = $1, rejection_reason = $2, review_requested = $3, review_reason = $4,
			verified_by = $5, verified_at = $6
		WHERE id = $7 AND status = $8`

	tag, err := tx.Exec(ctx, query,
		d.Status, d.RejectionReason, d.ReviewRequested, d.ReviewReason,
		d.VerifiedBy, d.VerifiedAt, d.ID, from,
	)
	if err != nil {
		return fmt.Errorf("update money donation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrStaleStatus
	}
	return nil
}

// ListAwaitingReview returns pending donations and rejected donations whose
// donor asked for a review, newest first.
func (r *MoneyDonationRepo) ListAwaitingReview(ctx context.Context) ([]domain.MoneyDonation, error) {
	query := `SELECT ` + moneyDonationColumns + ` FROM money_donations
		WHERE status = 'pending' OR (status = 'rejected' AND review_requested)
		ORDER BY created_at DESC`
	return r.list(ctx, "list pending money donations", query)
}

// ListByDonor returns a donor's donations, newest first.
func (r *MoneyDonationRepo) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]domain.MoneyDonation, error) {
	query := `SELECT ` + moneyDonationColumns + ` FROM money_donations
		WHERE donor_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, "list money donations by donor", query, donorID)
}

func (r *MoneyDonationRepo) list(ctx context.Context, op, query string, args ...any) ([]domain.MoneyDonation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var donations []domain.MoneyDonation
	for rows.Next() {
		d, err := scanMoneyDonation(rows)
		if err != nil {
			return nil, err
		}
		donations = append(donations, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return donations, nil
}

func scanMoneyDonation(row pgx.Row) (*domain.MoneyDonation, error) {
	d := &domain.MoneyDonation{}
	err := row.Scan(
		&d.ID, &d.DonorID, &d.DonorRole, &d.Amount, &d.PaymentMethod, &d.ExternalTransactionID,
		&d.ProofRef, &d.Notes, &d.Status, &d.RejectionReason, &d.ReviewRequested, &d.ReviewReason,
		&d.VerifiedBy, &d.VerifiedAt, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan money donation: %w", err)
	}
	return d, nil
}
