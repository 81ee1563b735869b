package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntityMoneyRequest names a money request in caller-facing errors.
const EntityMoneyRequest = "money request"

// MoneyRequestStatus is the approval state of a money request. Approved and
// rejected are terminal.
type MoneyRequestStatus string

const (
	MoneyRequestPending  MoneyRequestStatus = "pending"
	MoneyRequestApproved MoneyRequestStatus = "approved"
	MoneyRequestRejected MoneyRequestStatus = "rejected"
)

func (s MoneyRequestStatus) Valid() bool {
	switch s {
	case MoneyRequestPending, MoneyRequestApproved, MoneyRequestRejected:
		return true
	}
	return false
}

func (s MoneyRequestStatus) IsTerminal() bool {
	return s == MoneyRequestApproved || s == MoneyRequestRejected
}

// Approve moves pending to approved.
func (s MoneyRequestStatus) Approve() (MoneyRequestStatus, error) {
	if s != MoneyRequestPending {
		return s, &TransitionError{Entity: "money request", From: string(s), Action: "approve"}
	}
	return MoneyRequestApproved, nil
}

// Reject moves pending to rejected.
func (s MoneyRequestStatus) Reject() (MoneyRequestStatus, error) {
	if s != MoneyRequestPending {
		return s, &TransitionError{Entity: "money request", From: string(s), Action: "reject"}
	}
	return MoneyRequestRejected, nil
}

// MoneyRequest is a beneficiary's request for a disbursement from the fund.
type MoneyRequest struct {
	ID                 uuid.UUID          `json:"id"`
	RequesterID        uuid.UUID          `json:"requester_id"`
	RequesterRole      Role               `json:"requester_role"`
	Amount             int64              `json:"amount"`
	Purpose            string             `json:"purpose"`
	Distance           *decimal.Decimal   `json:"distance,omitempty"`
	TransportRate      *decimal.Decimal   `json:"transport_rate,omitempty"`
	Status             MoneyRequestStatus `json:"status"`
	RejectionReason    *string            `json:"rejection_reason,omitempty"`
	ReviewedBy         *uuid.UUID         `json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time         `json:"reviewed_at,omitempty"`
	BankAccountID      *uuid.UUID         `json:"bank_account_id,omitempty"`
	WithdrawalProofRef *string            `json:"withdrawal_proof_ref,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// TransportCost is distance * transportRate rounded to whole units, or nil
// when either figure is missing.
func (r *MoneyRequest) TransportCost() *int64 {
	if r.Distance == nil || r.TransportRate == nil {
		return nil
	}
	cost := r.Distance.Mul(*r.TransportRate).Round(0).IntPart()
	return &cost
}

// MoneyRequestFilter narrows a request listing.
type MoneyRequestFilter struct {
	Status      *MoneyRequestStatus
	RequesterID *uuid.UUID
}

// StatusTotals holds the count and summed amount for one status.
type StatusTotals struct {
	Count  int64 `json:"count"`
	Amount int64 `json:"amount"`
}

// MoneyRequestStats aggregates requests per status together with the
// current fund snapshot.
type MoneyRequestStats struct {
	Pending  StatusTotals `json:"pending"`
	Approved StatusTotals `json:"approved"`
	Rejected StatusTotals `json:"rejected"`
	Fund     FundBalance  `json:"fund"`
}
