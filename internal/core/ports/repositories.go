package ports

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrStaleStatus is returned by conditional status updates when the row no
// longer carries the expected source status.
var ErrStaleStatus = errors.New("status changed concurrently")

// UserRepository reads identities and credits eco points.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AddEcoPoints(ctx context.Context, tx pgx.Tx, userID uuid.UUID, points int64) error
}

// FundRepository persists the singleton fund balance row.
// GetForUpdate takes a row lock that serializes every ledger mutation.
type FundRepository interface {
	Get(ctx context.Context) (*domain.FundBalance, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.FundBalance, error)
	Update(ctx context.Context, tx pgx.Tx, balance *domain.FundBalance) error
}

// FinancialTransactionRepository is the append-only ledger audit trail.
type FinancialTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.FinancialTransaction) error
	List(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialTransaction, int64, error)
	Totals(ctx context.Context) (*domain.LedgerTotals, error)
}

// MoneyDonationRepository persists money donations. Transition applies the
// new state only if the stored status still equals from.
type MoneyDonationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, donation *domain.MoneyDonation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MoneyDonation, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.MoneyDonation, error)
	Transition(ctx context.Context, tx pgx.Tx, donation *domain.MoneyDonation, from domain.MoneyDonationStatus) error
	ListAwaitingReview(ctx context.Context) ([]domain.MoneyDonation, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]domain.MoneyDonation, error)
}

// MoneyRequestRepository persists money requests.
type MoneyRequestRepository interface {
	Create(ctx context.Context, tx pgx.Tx, request *domain.MoneyRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MoneyRequest, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.MoneyRequest, error)
	Transition(ctx context.Context, tx pgx.Tx, request *domain.MoneyRequest, from domain.MoneyRequestStatus) error
	List(ctx context.Context, filter domain.MoneyRequestFilter) ([]domain.MoneyRequest, error)
	Stats(ctx context.Context) (*domain.MoneyRequestStats, error)
}

// BankAccountRepository persists payout destinations.
type BankAccountRepository interface {
	Create(ctx context.Context, tx pgx.Tx, account *domain.BankAccount) error
	ClearDefault(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.BankAccount, error)
}

// PhysicalDonationRepository reads and updates handoff state.
type PhysicalDonationRepository interface {
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PhysicalDonation, error)
	UpdateHandoff(ctx context.Context, tx pgx.Tx, donation *domain.PhysicalDonation) error
}

// AdminActionRepository is the append-only admin audit log.
type AdminActionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, action *domain.AdminAction) error
}

// OutboxRepository stores notifications until they are published.
type OutboxRepository interface {
	Enqueue(ctx context.Context, tx pgx.Tx, notification *domain.Notification) error
	Claim(ctx context.Context, limit int, staleAfter time.Duration) ([]domain.OutboxMessage, error)
	MarkPublished(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextAttempt time.Time, terminal bool) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
