package domain

import (
	"time"

	"github.com/google/uuid"
)

// FundBalance is the singleton aggregate of the shared money pool.
// TotalBalance always equals TotalDonations - TotalWithdrawals and never
// drops below zero.
type FundBalance struct {
	TotalBalance     int64     `json:"total_balance"`
	TotalDonations   int64     `json:"total_donations"`
	TotalWithdrawals int64     `json:"total_withdrawals"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Consistent reports whether the balance identity holds.
func (f FundBalance) Consistent() bool {
	return f.TotalBalance >= 0 &&
		f.TotalDonations >= 0 &&
		f.TotalWithdrawals >= 0 &&
		f.TotalBalance == f.TotalDonations-f.TotalWithdrawals
}

// Credited returns the balance after adding amount.
func (f FundBalance) Credited(amount int64, at time.Time) FundBalance {
	return FundBalance{
		TotalBalance:     f.TotalBalance + amount,
		TotalDonations:   f.TotalDonations + amount,
		TotalWithdrawals: f.TotalWithdrawals,
		UpdatedAt:        at,
	}
}

// Debited returns the balance after removing amount.
func (f FundBalance) Debited(amount int64, at time.Time) FundBalance {
	return FundBalance{
		TotalBalance:     f.TotalBalance - amount,
		TotalDonations:   f.TotalDonations,
		TotalWithdrawals: f.TotalWithdrawals + amount,
		UpdatedAt:        at,
	}
}

// TransactionKind is the direction of a ledger mutation.
type TransactionKind string

const (
	TransactionKindDonation   TransactionKind = "donation"
	TransactionKindWithdrawal TransactionKind = "withdrawal"
)

func (k TransactionKind) Valid() bool {
	return k == TransactionKindDonation || k == TransactionKindWithdrawal
}

// TransactionCategory names the workflow that caused a ledger mutation.
type TransactionCategory string

const (
	CategoryMoneyDonation    TransactionCategory = "money_donation"
	CategoryMoneyRequest     TransactionCategory = "money_request"
	CategoryManualAdjustment TransactionCategory = "manual_adjustment"
)

func (c TransactionCategory) Valid() bool {
	switch c {
	case CategoryMoneyDonation, CategoryMoneyRequest, CategoryManualAdjustment:
		return true
	}
	return false
}

// FinancialTransaction is an immutable audit entry, written exactly once per
// successful ledger mutation.
type FinancialTransaction struct {
	ID                uuid.UUID           `json:"id"`
	Kind              TransactionKind     `json:"kind"`
	Amount            int64               `json:"amount"`
	ActorUserID       uuid.UUID           `json:"actor_user_id"`
	RelatedDonationID *uuid.UUID          `json:"related_donation_id,omitempty"`
	Category          TransactionCategory `json:"category"`
	Description       string              `json:"description"`
	CreatedAt         time.Time           `json:"created_at"`
}

// LedgerEntry is the input to a credit or debit.
type LedgerEntry struct {
	Amount            int64
	ActorUserID       uuid.UUID
	RelatedDonationID *uuid.UUID
	Category          TransactionCategory
	Description       string
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Kind     *TransactionKind
	Category *TransactionCategory
	Page     int
	PageSize int
}

// LedgerTotals are sums recomputed from the transaction records.
type LedgerTotals struct {
	Donations   int64 `json:"donations"`
	Withdrawals int64 `json:"withdrawals"`
	Records     int64 `json:"records"`
}
