package postgres

import (
	"context"
	"errors"
	"fmt"

	"donation-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// errFundRowMissing means the singleton row was never initialized.
var errFundRowMissing = errors.New("fund balance row missing")

const fundColumns = `total_balance, total_donations, total_withdrawals, updated_at`

// FundRepo implements ports.FundRepository over the singleton fund_balance row.
type FundRepo struct {
	pool Pool
}

// NewFundRepo creates a new FundRepo.
func NewFundRepo(pool Pool) *FundRepo {
	return &FundRepo{pool: pool}
}

// Get reads the fund balance without locking.
func (r *FundRepo) Get(ctx context.Context) (*domain.FundBalance, error) {
	query := `SELECT ` + fundColumns + ` FROM fund_balance WHERE id = 1`
	return scanFund(r.pool.QueryRow(ctx, query), "get fund balance")
}

// GetForUpdate reads the fund balance and locks the row until tx ends.
func (r *FundRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.FundBalance, error) {
	query := `SELECT ` + fundColumns + ` FROM fund_balance WHERE id = 1 FOR UPDATE`
	return scanFund(tx.QueryRow(ctx, query), "lock fund balance")
}

// Update writes the new totals. The table's CHECK constraints reject a
// negative balance or a broken balance identity.
func (r *FundRepo) Update(ctx context.Context, tx pgx.Tx, f *domain.FundBalance) error {
	query := `UPDATE fund_balance
		SET total_balance = $1, total_donations = $2, total_withdrawals = $3, updated_at = $4
		WHERE id = 1`

	tag, err := tx.Exec(ctx, query, f.TotalBalance, f.TotalDonations, f.TotalWithdrawals, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update fund balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errFundRowMissing
	}
	return nil
}

func scanFund(row pgx.Row, op string) (*domain.FundBalance, error) {
	f := &domain.FundBalance{}
	err := row.Scan(&f.TotalBalance, &f.TotalDonations, &f.TotalWithdrawals, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return f, nil
}
