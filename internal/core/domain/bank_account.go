package domain

import (
	"time"

	"github.com/google/uuid"
)

// BankAccountStatus is the lifecycle state of a payout destination.
type BankAccountStatus string

const (
	BankAccountActive   BankAccountStatus = "active"
	BankAccountInactive BankAccountStatus = "inactive"
)

// BankAccount is a per-user payout destination. AccountNumber holds the
// plaintext only in memory; storage keeps the encrypted form.
type BankAccount struct {
	ID                uuid.UUID         `json:"id"`
	OwnerUserID       uuid.UUID         `json:"owner_user_id"`
	AccountHolderName string            `json:"account_holder_name"`
	BankName          string            `json:"bank_name"`
	AccountNumber     string            `json:"-"`
	AccountNumberEnc  string            `json:"-"`
	AccountLast4      string            `json:"account_last4"`
	IBAN              *string           `json:"iban,omitempty"`
	BranchCode        *string           `json:"branch_code,omitempty"`
	AccountType       string            `json:"account_type"`
	IsDefault         bool              `json:"is_default"`
	IsVerified        bool              `json:"is_verified"`
	Status            BankAccountStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
}

// IsActive reports whether payouts may be sent to the account.
func (b *BankAccount) IsActive() bool {
	return b.Status == BankAccountActive
}

// MaskedNumber renders the account number with all but the last four digits hidden.
func (b *BankAccount) MaskedNumber() string {
	return "****" + b.AccountLast4
}

// Last4 returns the trailing four characters of an account number.
func Last4(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
