package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Validation (VAL) ----

// Validation returns a generic validation error with a caller-facing message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidCategory(category string) *AppError {
	return New("VAL_003", fmt.Sprintf("Category %q is not allowed", category), http.StatusBadRequest)
}

func ErrPayloadTooLarge(limit int64) *AppError {
	return New("VAL_004", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- Resources (RES) ----

func ErrNotFound(entity string) *AppError {
	return New("RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication & Authorization (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden(message string) *AppError {
	return New("AUTH_002", message, http.StatusForbidden)
}

func ErrIneligibleRole(role string) *AppError {
	return New("AUTH_003", fmt.Sprintf("Role %q is not eligible for this operation", role), http.StatusForbidden)
}

// ---- Workflow (WF) ----

// ErrAlreadyProcessed is the Conflict returned when an entity left the state
// a transition requires.
func ErrAlreadyProcessed(entity string) *AppError {
	return New("WF_001", fmt.Sprintf("%s already processed", entity), http.StatusConflict)
}

func ErrInvalidState(message string) *AppError {
	return New("WF_002", message, http.StatusBadRequest)
}

func ErrRequestInProgress() *AppError {
	return New("WF_003", "A request with this Idempotency-Key is already in progress", http.StatusConflict)
}

// ErrHandoffNotActive is the Conflict returned when a handoff confirmation
// arrives for a donation that is not claimed.
func ErrHandoffNotActive(status string) *AppError {
	return New("WF_004", fmt.Sprintf("donation is %s and not awaiting handoff", status), http.StatusConflict)
}

// ---- Fund (FUND) ----

func ErrInsufficientFunds(available, requested int64) *AppError {
	return &AppError{
		Code:       "FUND_001",
		Message:    fmt.Sprintf("Insufficient funds: available %d, requested %d", available, requested),
		HTTPStatus: http.StatusBadRequest,
		Details: map[string]any{
			"available": available,
			"requested": requested,
		},
	}
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrUnavailable marks a retryable storage or collaborator timeout.
func ErrUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Service temporarily unavailable, retry later", http.StatusServiceUnavailable, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// FromStorage classifies a storage failure. Errors that already carry an
// AppError pass through, timeouts become Unavailable and the rest are internal.
func FromStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	wrapped := fmt.Errorf("%s: %w", op, err)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || isTimeout(err) || isRetryablePg(err) {
		return ErrUnavailable(wrapped)
	}
	return InternalError(wrapped)
}

// lock_not_available, query_canceled, serialization_failure, deadlock_detected
var retryablePgCodes = map[string]bool{
	"55P03": true,
	"57014": true,
	"40001": true,
	"40P01": true,
}

func isRetryablePg(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && retryablePgCodes[pgErr.Code]
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
