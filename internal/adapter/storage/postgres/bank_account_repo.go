package postgres

import (
	"context"
	"errors"
	"fmt"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bankAccountColumns = `id, owner_user_id, account_holder_name, bank_name, account_number_enc,
	account_last4, iban, branch_code, account_type, is_default, is_verified, status, created_at`

// BankAccountRepo implements ports.BankAccountRepository. Account numbers are
// stored only in encrypted form.
type BankAccountRepo struct {
	pool Pool
}

// NewBankAccountRepo creates a new BankAccountRepo.
func NewBankAccountRepo(pool Pool) *BankAccountRepo {
	return &BankAccountRepo{pool: pool}
}

// Create inserts a bank account within tx.
func (r *BankAccountRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.BankAccount) error {
	query := `INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		a.ID, a.OwnerUserID, a.AccountHolderName, a.BankName, a.AccountNumberEnc,
		a.AccountLast4, a.IBAN, a.BranchCode, a.AccountType, a.IsDefault, a.IsVerified,
		a.Status, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// ClearDefault unsets the default flag on every account of the owner.
func (r *BankAccountRepo) ClearDefault(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) error {
	_, err := tx.Exec(ctx, `UPDATE bank_accounts SET is_default = FALSE WHERE owner_user_id = $1 AND is_default`, ownerID)
	if err != nil {
		return fmt.Errorf("clear default bank account: %w", err)
	}
	return nil
}

// GetByID fetches a bank account, returning nil when absent.
func (r *BankAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE id = $1`
	return scanBankAccount(r.pool.QueryRow(ctx, query, id))
}

// ListByOwner returns the owner's accounts, default first.
func (r *BankAccountRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts
		WHERE owner_user_id = $1 ORDER BY is_default DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.BankAccount
	for rows.Next() {
		a, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank account rows: %w", err)
	}
	return accounts, nil
}

func scanBankAccount(row pgx.Row) (*domain.BankAccount, error) {
	a := &domain.BankAccount{}
	err := row.Scan(
		&a.ID, &a.OwnerUserID, &a.AccountHolderName, &a.BankName, &a.AccountNumberEnc,
		&a.AccountLast4, &a.IBAN, &a.BranchCode, &a.AccountType, &a.IsDefault, &a.IsVerified,
		&a.Status, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan bank account: %w", err)
	}
	return a, nil
}
