package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := AddBankAccountRequest{
		AccountHolderName: "  Alice Doe  ",
		BankName:          " First Bank ",
		AccountNumber:     " 1234-5678 ",
		AccountType:       " savings",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Alice Doe", req.AccountHolderName)
	assert.Equal(t, "First Bank", req.BankName)
	assert.Equal(t, "1234-5678", req.AccountNumber)
	assert.Equal(t, "savings", req.AccountType)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := ReasonRequest{Reason: "blurry <script>alert('x')</script> receipt"}
	SanitizeStruct(&req)

	assert.Contains(t, req.Reason, "&lt;script&gt;")
	assert.NotContains(t, req.Reason, "<script>")
}

func TestSanitizeStruct_OptOutOnlyTrims(t *testing.T) {
	proof := "  https://proofs.example.com/a.png?x=1&y=2  "
	notes := " paid <b>twice</b> "
	req := SubmitDonationRequest{Amount: 100, PaymentMethod: "bank", ProofRef: &proof, Notes: &notes}
	SanitizeStruct(&req)

	assert.Equal(t, "https://proofs.example.com/a.png?x=1&y=2", *req.ProofRef)
	assert.Equal(t, "paid &lt;b&gt;twice&lt;/b&gt;", *req.Notes)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := SubmitDonationRequest{Amount: 100, PaymentMethod: "cash"}
	SanitizeStruct(&req)
	assert.Nil(t, req.ProofRef)
	assert.Nil(t, req.Notes)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"ref-001",
		"REF_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"ref 001",     // space
		"ref<001>",    // angle brackets
		"ref;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"ref\n001",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestBinding_SubmitDonation(t *testing.T) {
	good := "https://proofs.example.com/receipt.png"
	bad := "javascript:alert(1)"
	ext := "bank tx 42"

	tests := []struct {
		name    string
		req     SubmitDonationRequest
		wantErr bool
	}{
		{"valid", SubmitDonationRequest{Amount: 500, PaymentMethod: "bank_transfer", ProofRef: &good}, false},
		{"zero amount", SubmitDonationRequest{Amount: 0, PaymentMethod: "cash"}, true},
		{"negative amount", SubmitDonationRequest{Amount: -5, PaymentMethod: "cash"}, true},
		{"missing method", SubmitDonationRequest{Amount: 5}, true},
		{"non-http proof", SubmitDonationRequest{Amount: 5, PaymentMethod: "cash", ProofRef: &bad}, true},
		{"unsafe external id", SubmitDonationRequest{Amount: 5, PaymentMethod: "cash", ExternalTransactionID: &ext}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBinding_Adjustment(t *testing.T) {
	assert.NoError(t, binding.Validator.ValidateStruct(&AdjustmentRequest{Kind: "withdrawal", Amount: 10, Description: "bank fee"}))
	assert.Error(t, binding.Validator.ValidateStruct(&AdjustmentRequest{Kind: "refund", Amount: 10, Description: "x"}))
	assert.Error(t, binding.Validator.ValidateStruct(&AdjustmentRequest{Kind: "donation", Amount: 10}))
}

func TestBinding_ApproveMoneyRequest(t *testing.T) {
	assert.NoError(t, binding.Validator.ValidateStruct(&ApproveMoneyRequest{BankAccountID: "0b6f3c1e-8a55-4b59-9f4e-1d2c3b4a5f60"}))
	assert.Error(t, binding.Validator.ValidateStruct(&ApproveMoneyRequest{BankAccountID: "acct-1"}))
}
