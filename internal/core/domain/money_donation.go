package domain

import (
	"time"

	"github.com/google/uuid"
)

// MoneyDonationStatus is the verification state of a money donation.
type MoneyDonationStatus string

const (
	MoneyDonationPending   MoneyDonationStatus = "pending"
	MoneyDonationCompleted MoneyDonationStatus = "completed"
	MoneyDonationRejected  MoneyDonationStatus = "rejected"
)

func (s MoneyDonationStatus) Valid() bool {
	switch s {
	case MoneyDonationPending, MoneyDonationCompleted, MoneyDonationRejected:
		return true
	}
	return false
}

// Approve moves pending to completed.
func (s MoneyDonationStatus) Approve() (MoneyDonationStatus, error) {
	if s != MoneyDonationPending {
		return s, s.transitionErr("approve")
	}
	return MoneyDonationCompleted, nil
}

// Reject moves pending to rejected.
func (s MoneyDonationStatus) Reject() (MoneyDonationStatus, error) {
	if s != MoneyDonationPending {
		return s, s.transitionErr("reject")
	}
	return MoneyDonationRejected, nil
}

// Reopen moves rejected back to pending after a donor review request.
func (s MoneyDonationStatus) Reopen() (MoneyDonationStatus, error) {
	if s != MoneyDonationRejected {
		return s, s.transitionErr("request review")
	}
	return MoneyDonationPending, nil
}

func (s MoneyDonationStatus) transitionErr(action string) error {
	return &TransitionError{Entity: "money donation", From: string(s), Action: action}
}

// MoneyDonation is a donor-submitted payment awaiting admin verification.
type MoneyDonation struct {
	ID                    uuid.UUID           `json:"id"`
	DonorID               uuid.UUID           `json:"donor_id"`
	DonorRole             Role                `json:"donor_role"`
	Amount                int64               `json:"amount"`
	PaymentMethod         string              `json:"payment_method"`
	ExternalTransactionID *string             `json:"external_transaction_id,omitempty"`
	ProofRef              *string             `json:"proof_ref,omitempty"`
	Notes                 *string             `json:"notes,omitempty"`
	Status                MoneyDonationStatus `json:"status"`
	RejectionReason       *string             `json:"rejection_reason,omitempty"`
	ReviewRequested       bool                `json:"review_requested"`
	ReviewReason          *string             `json:"review_reason,omitempty"`
	VerifiedBy            *uuid.UUID          `json:"verified_by,omitempty"`
	VerifiedAt            *time.Time          `json:"verified_at,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
}

// AwaitingReview reports whether the donation belongs in the admin queue.
func (d *MoneyDonation) AwaitingReview() bool {
	return d.Status == MoneyDonationPending ||
		(d.Status == MoneyDonationRejected && d.ReviewRequested)
}
