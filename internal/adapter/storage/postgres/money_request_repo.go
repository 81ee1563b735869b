package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const moneyRequestSelect = `SELECT id, requester_id, requester_role, amount, purpose,
	distance::text, transport_rate::text, status, rejection_reason, reviewed_by, reviewed_at,
	bank_account_id, withdrawal_proof_ref, created_at
	FROM money_requests`

// MoneyRequestRepo implements ports.MoneyRequestRepository.
type MoneyRequestRepo struct {
	pool Pool
}

// NewMoneyRequestRepo creates a new MoneyRequestRepo.
func NewMoneyRequestRepo(pool Pool) *MoneyRequestRepo {
	return &MoneyRequestRepo{pool: pool}
}

// Create inserts a new request within tx.
func (r *MoneyRequestRepo) Create(ctx context.Context, tx pgx.Tx, m *domain.MoneyRequest) error {
	query := `INSERT INTO money_requests (id, requester_id, requester_role, amount, purpose,
		distance, transport_rate, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8, $9)`

	_, err := tx.Exec(ctx, query,
		m.ID, m.RequesterID, m.RequesterRole, m.Amount, m.Purpose,
		decimalText(m.Distance), decimalText(m.TransportRate), m.Status, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert money request: %w", err)
	}
	return nil
}

// GetByID fetches a request without locking.
func (r *MoneyRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoneyRequest, error) {
	return scanMoneyRequest(r.pool.QueryRow(ctx, moneyRequestSelect+` WHERE id = $1`, id))
}

// GetByIDForUpdate fetches a request and locks its row until tx ends.
func (r *MoneyRequestRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.MoneyRequest, error) {
	return scanMoneyRequest(tx.QueryRow(ctx, moneyRequestSelect+` WHERE id = $1 FOR UPDATE`, id))
}

// Transition persists the review outcome only if the stored status is still from.
func (r *MoneyRequestRepo) Transition(ctx context.Context, tx pgx.Tx, m *domain.MoneyRequest, from domain.MoneyRequestStatus) error {
	query := `UPDATE money_requests
		SET status = $1, rejection_reason = $2, reviewed_by = $3, reviewed_at = $4,
			bank_account_id = $5, withdrawal_proof_ref = $6
		WHERE id = $7 AND status = $8`

	tag, err := tx.Exec(ctx, query,
		m.Status, m.RejectionReason, m.ReviewedBy, m.ReviewedAt,
		m.BankAccountID, m.WithdrawalProofRef, m.ID, from,
	)
	if err != nil {
		return fmt.Errorf("update money request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrStaleStatus
	}
	return nil
}

// List returns requests matching the filter, newest first.
func (r *MoneyRequestRepo) List(ctx context.Context, f domain.MoneyRequestFilter) ([]domain.MoneyRequest, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if f.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}
	if f.RequesterID != nil {
		conditions = append(conditions, fmt.Sprintf("requester_id = $%d", argIdx))
		args = append(args, *f.RequesterID)
	}

	query := moneyRequestSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list money requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.MoneyRequest
	for rows.Next() {
		m, err := scanMoneyRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate money request rows: %w", err)
	}
	return requests, nil
}

// Stats returns count and summed amount per status. The fund snapshot is
// filled in by the service.
func (r *MoneyRequestRepo) Stats(ctx context.Context) (*domain.MoneyRequestStats, error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE status = 'pending'),
		COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
		COUNT(*) FILTER (WHERE status = 'approved'),
		COALESCE(SUM(amount) FILTER (WHERE status = 'approved'), 0),
		COUNT(*) FILTER (WHERE status = 'rejected'),
		COALESCE(SUM(amount) FILTER (WHERE status = 'rejected'), 0)
		FROM money_requests`

	s := &domain.MoneyRequestStats{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.Pending.Count, &s.Pending.Amount,
		&s.Approved.Count, &s.Approved.Amount,
		&s.Rejected.Count, &s.Rejected.Amount,
	)
	if err != nil {
		return nil, fmt.Errorf("get money request stats: %w", err)
	}
	return s, nil
}

func scanMoneyRequest(row pgx.Row) (*domain.MoneyRequest, error) {
	m := &domain.MoneyRequest{}
	var distance, rate *string
	err := row.Scan(
		&m.ID, &m.RequesterID, &m.RequesterRole, &m.Amount, &m.Purpose,
		&distance, &rate, &m.Status, &m.RejectionReason, &m.ReviewedBy, &m.ReviewedAt,
		&m.BankAccountID, &m.WithdrawalProofRef, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan money request: %w", err)
	}
	if m.Distance, err = parseDecimal(distance); err != nil {
		return nil, fmt.Errorf("parse distance: %w", err)
	}
	if m.TransportRate, err = parseDecimal(rate); err != nil {
		return nil, fmt.Errorf("parse transport rate: %w", err)
	}
	return m, nil
}

func decimalText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
