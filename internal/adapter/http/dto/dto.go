package dto

import (
	"donation-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// SubmitDonationRequest is the request body for a money donation.
type SubmitDonationRequest struct {
	Amount                int64   `json:"amount" binding:"required,gt=0"`
	PaymentMethod         string  `json:"payment_method" binding:"required,max=50"`
	ExternalTransactionID *string `json:"external_transaction_id,omitempty" binding:"omitempty,max=100,safe_id"`
	ProofRef              *string `json:"proof_ref,omitempty" binding:"omitempty,max=1024,safe_url" sanitize:"-"`
	Notes                 *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ReasonRequest carries the free-text reason of a rejection or review request.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

// SubmitMoneyRequest is the request body for a beneficiary's money request.
type SubmitMoneyRequest struct {
	Amount        int64            `json:"amount" binding:"required,gt=0"`
	Purpose       string           `json:"purpose" binding:"required,max=2000"`
	Distance      *decimal.Decimal `json:"distance,omitempty"`
	TransportRate *decimal.Decimal `json:"transport_rate,omitempty"`
}

// ApproveMoneyRequest is the admin's payout choice for a money request.
type ApproveMoneyRequest struct {
	BankAccountID      string `json:"bank_account_id" binding:"required,uuid"`
	AccountType        string `json:"account_type" binding:"omitempty,max=30"`
	WithdrawalProofRef string `json:"withdrawal_proof_ref" binding:"omitempty,max=1024,safe_url" sanitize:"-"`
}

// AdjustmentRequest is the request body for a manual fund correction.
type AdjustmentRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=donation withdrawal"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"required,max=500"`
}

// AddBankAccountRequest is the request body for a new payout destination.
type AddBankAccountRequest struct {
	AccountHolderName string  `json:"account_holder_name" binding:"required,max=100"`
	BankName          string  `json:"bank_name" binding:"required,max=100"`
	AccountNumber     string  `json:"account_number" binding:"required,min=4,max=40" sanitize:"-"`
	IBAN              *string `json:"iban,omitempty" binding:"omitempty,max=34,alphanum"`
	BranchCode        *string `json:"branch_code,omitempty" binding:"omitempty,max=20,safe_id"`
	AccountType       string  `json:"account_type" binding:"required,max=30"`
	IsDefault         bool    `json:"is_default"`
}

// MoneyRequestResponse adds the derived transport cost to a money request.
type MoneyRequestResponse struct {
	*domain.MoneyRequest
	TransportCost *int64 `json:"transport_cost,omitempty"`
}

// NewMoneyRequestResponse wraps a money request for output.
func NewMoneyRequestResponse(r *domain.MoneyRequest) MoneyRequestResponse {
	return MoneyRequestResponse{MoneyRequest: r, TransportCost: r.TransportCost()}
}

// ProofUploadResponse is returned after a proof is stored.
type ProofUploadResponse struct {
	URL string `json:"url"`
}
