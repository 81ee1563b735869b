package postgres

import (
	"context"
	"fmt"
	"strings"

	"donation-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const financialTxColumns = `id, kind, amount, actor_user_id, related_donation_id, category, description, created_at`

// FinancialTransactionRepo implements ports.FinancialTransactionRepository.
// Rows are only ever inserted.
type FinancialTransactionRepo struct {
	pool Pool
}

// NewFinancialTransactionRepo creates a new FinancialTransactionRepo.
func NewFinancialTransactionRepo(pool Pool) *FinancialTransactionRepo {
	return &FinancialTransactionRepo{pool: pool}
}

// Create appends a record within the ledger mutation's transaction.
func (r *FinancialTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.FinancialTransaction) error {
	query := `INSERT INTO financial_transactions (` + financialTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.Kind, t.Amount, t.ActorUserID,
		t.RelatedDonationID, t.Category, t.Description, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert financial transaction: %w", err)
	}
	return nil
}

// List returns a page of records, newest first, and the total match count.
func (r *FinancialTransactionRepo) List(ctx context.Context, f domain.TransactionFilter) ([]domain.FinancialTransaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if f.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", argIdx))
		args = append(args, *f.Kind)
		argIdx++
	}
	if f.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, *f.Category)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM financial_transactions %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count financial transactions: %w", err)
	}

	offset := (f.Page - 1) * f.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM financial_transactions %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, financialTxColumns, where, argIdx, argIdx+1)
	args = append(args, f.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list financial transactions: %w", err)
	}
	defer rows.Close()

	var records []domain.FinancialTransaction
	for rows.Next() {
		t := domain.FinancialTransaction{}
		if err := rows.Scan(
			&t.ID, &t.Kind, &t.Amount, &t.ActorUserID,
			&t.RelatedDonationID, &t.Category, &t.Description, &t.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan financial transaction row: %w", err)
		}
		records = append(records, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate financial transaction rows: %w", err)
	}
	return records, total, nil
}

// Totals recomputes the donation and withdrawal sums from the records.
func (r *FinancialTransactionRepo) Totals(ctx context.Context) (*domain.LedgerTotals, error) {
	query := `SELECT
		COALESCE(SUM(amount) FILTER (WHERE kind = 'donation'), 0) AS donations,
		COALESCE(SUM(amount) FILTER (WHERE kind = 'withdrawal'), 0) AS withdrawals,
		COUNT(*) AS records
		FROM financial_transactions`

	totals := &domain.LedgerTotals{}
	if err := r.pool.QueryRow(ctx, query).Scan(&totals.Donations, &totals.Withdrawals, &totals.Records); err != nil {
		return nil, fmt.Errorf("sum financial transactions: %w", err)
	}
	return totals, nil
}
