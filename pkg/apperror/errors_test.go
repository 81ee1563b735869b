package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("RES_001", "Donation not found", http.StatusNotFound),
			expected: "[RES_001] Donation not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("VAL_001", "test", http.StatusBadRequest).Unwrap())
}

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("purpose is required"), "VAL_001", 400},
		{"InvalidAmount", ErrInvalidAmount(), "VAL_002", 400},
		{"InvalidCategory", ErrInvalidCategory("bonus"), "VAL_003", 400},
		{"PayloadTooLarge", ErrPayloadTooLarge(1024), "VAL_004", 413},
		{"NotFound", ErrNotFound("Money request"), "RES_001", 404},
		{"InvalidToken", ErrInvalidToken(), "AUTH_001", 401},
		{"Forbidden", ErrForbidden("not the donor"), "AUTH_002", 403},
		{"IneligibleRole", ErrIneligibleRole("admin"), "AUTH_003", 403},
		{"AlreadyProcessed", ErrAlreadyProcessed("Money donation"), "WF_001", 409},
		{"InvalidState", ErrInvalidState("donation is not rejected"), "WF_002", 400},
		{"RequestInProgress", ErrRequestInProgress(), "WF_003", 409},
		{"HandoffNotActive", ErrHandoffNotActive("Available"), "WF_004", 409},
		{"InsufficientFunds", ErrInsufficientFunds(200, 1000), "FUND_001", 400},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
		{"Internal", InternalError(errors.New("x")), "SYS_001", 500},
		{"Unavailable", ErrUnavailable(errors.New("x")), "SYS_002", 503},
		{"Encryption", ErrEncryptionFailure(errors.New("x")), "SYS_003", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInsufficientFunds_Details(t *testing.T) {
	err := ErrInsufficientFunds(200, 1000)
	assert.Equal(t, int64(200), err.Details["available"])
	assert.Equal(t, int64(1000), err.Details["requested"])
	assert.Contains(t, err.Message, "available 200")
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("approve: %w", ErrAlreadyProcessed("Money request"))
	assert.True(t, Is(err, "WF_001"))
	assert.False(t, Is(err, "RES_001"))
	assert.False(t, Is(errors.New("plain"), "WF_001"))
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "i/o timeout" }
func (timeoutErr) Timeout() bool { return true }

func TestFromStorage(t *testing.T) {
	assert.NoError(t, FromStorage("noop", nil))

	err := FromStorage("lock fund", context.DeadlineExceeded)
	assert.True(t, Is(err, "SYS_002"))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	err = FromStorage("lock fund", timeoutErr{})
	assert.True(t, Is(err, "SYS_002"))

	err = FromStorage("lock fund", &pgconn.PgError{Code: "55P03", Message: "could not obtain lock"})
	assert.True(t, Is(err, "SYS_002"))

	err = FromStorage("approve", fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40P01"}))
	assert.True(t, Is(err, "SYS_002"))

	err = FromStorage("insert record", &pgconn.PgError{Code: "23505", Message: "unique violation"})
	assert.True(t, Is(err, "SYS_001"))

	err = FromStorage("insert record", errors.New("unique violation"))
	assert.True(t, Is(err, "SYS_001"))

	original := ErrNotFound("Bank account")
	err = FromStorage("load", original)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Same(t, original, appErr)
}
