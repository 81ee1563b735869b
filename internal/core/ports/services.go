package ports

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

import (
	"context"
	"io"
	"time"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// TokenService issues and validates caller identity tokens.
type TokenService interface {
	Generate(userID uuid.UUID, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   domain.Role
}

// IdempotencyCache stores replayable submission responses.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) (*domain.IdempotentResponse, error)
	Set(ctx context.Context, key string, value *domain.IdempotentResponse, ttl time.Duration) error
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// RateLimiter counts requests in a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult is the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// EventPublisher delivers notification events to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

// ProofStore is the opaque blob store for payment and transfer proofs.
type ProofStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// --- Service Ports (Business Logic) ---

// FundLedger is the only writer of the fund balance. The Tx variants join a
// caller's transaction so a workflow transition and its ledger mutation
// commit together.
type FundLedger interface {
	Credit(ctx context.Context, entry domain.LedgerEntry) (*domain.FinancialTransaction, error)
	Debit(ctx context.Context, entry domain.LedgerEntry) (*domain.FinancialTransaction, error)
	CreditTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.FinancialTransaction, error)
	DebitTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.FinancialTransaction, error)
	Balance(ctx context.Context) (*domain.FundBalance, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialTransaction, int64, error)
	Adjust(ctx context.Context, req AdjustmentRequest) (*domain.FinancialTransaction, error)
	Verify(ctx context.Context) (*LedgerReport, error)
}

// AdjustmentRequest is an admin-initiated correction.
type AdjustmentRequest struct {
	AdminID     uuid.UUID
	Kind        domain.TransactionKind
	Amount      int64
	Description string
}

// LedgerReport compares the fund row with the recomputed record totals.
type LedgerReport struct {
	Balance    domain.FundBalance  `json:"balance"`
	Recomputed domain.LedgerTotals `json:"recomputed"`
	Consistent bool                `json:"consistent"`
}

// MoneyDonationService runs the money donation verification workflow.
type MoneyDonationService interface {
	Submit(ctx context.Context, req SubmitDonationRequest) (*domain.MoneyDonation, error)
	Approve(ctx context.Context, id, adminID uuid.UUID) (*DonationApproval, error)
	Reject(ctx context.Context, id, adminID uuid.UUID, reason string) error
	RequestReview(ctx context.Context, id, donorID uuid.UUID, reason string) error
	ListPending(ctx context.Context) ([]domain.MoneyDonation, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]domain.MoneyDonation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MoneyDonation, error)
}

// SubmitDonationRequest holds validated input for a money donation.
type SubmitDonationRequest struct {
	DonorID               uuid.UUID
	Amount                int64
	PaymentMethod         string
	ExternalTransactionID *string
	ProofRef              *string
	Notes                 *string
}

// DonationApproval is the result of approving a money donation.
type DonationApproval struct {
	EcoPointsAwarded int64                       `json:"eco_points_awarded"`
	Transaction      *domain.FinancialTransaction `json:"transaction"`
}

// MoneyRequestService runs the money request approval workflow.
type MoneyRequestService interface {
	Submit(ctx context.Context, req SubmitMoneyRequest) (*domain.MoneyRequest, error)
	Approve(ctx context.Context, req ApproveMoneyRequest) (*RequestApproval, error)
	Reject(ctx context.Context, id, adminID uuid.UUID, reason string) error
	List(ctx context.Context, filter domain.MoneyRequestFilter) ([]domain.MoneyRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MoneyRequest, error)
	Stats(ctx context.Context) (*domain.MoneyRequestStats, error)
}

// SubmitMoneyRequest holds validated input for a money request.
type SubmitMoneyRequest struct {
	RequesterID   uuid.UUID
	Amount        int64
	Purpose       string
	Distance      *decimal.Decimal
	TransportRate *decimal.Decimal
}

// ApproveMoneyRequest holds the admin's approval choices.
type ApproveMoneyRequest struct {
	RequestID          uuid.UUID
	AdminID            uuid.UUID
	BankAccountID      uuid.UUID
	AccountType        string
	WithdrawalProofRef string
}

// RequestApproval is the result of approving a money request.
type RequestApproval struct {
	TransferredAmount int64                       `json:"transferred_amount"`
	Transaction       *domain.FinancialTransaction `json:"transaction"`
}

// BankAccountService manages payout destinations.
type BankAccountService interface {
	Add(ctx context.Context, req AddBankAccountRequest) (*domain.BankAccount, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.BankAccount, error)
	Get(ctx context.Context, id, ownerID uuid.UUID) (*domain.BankAccount, error)
}

// AddBankAccountRequest holds validated input for a new bank account.
type AddBankAccountRequest struct {
	OwnerID           uuid.UUID
	AccountHolderName string
	BankName          string
	AccountNumber     string
	IBAN              *string
	BranchCode        *string
	AccountType       string
	IsDefault         bool
}

// HandoffService runs the two-party handoff confirmation protocol.
type HandoffService interface {
	ConfirmSent(ctx context.Context, donationID, callerID uuid.UUID) (*domain.PhysicalDonation, error)
	ConfirmReceived(ctx context.Context, donationID, callerID uuid.UUID) (*domain.PhysicalDonation, error)
}

// ProofService validates and stores uploaded proofs.
type ProofService interface {
	Upload(ctx context.Context, req UploadProofRequest) (string, error)
}

// UploadProofRequest describes an uploaded proof file.
type UploadProofRequest struct {
	OwnerID     uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
