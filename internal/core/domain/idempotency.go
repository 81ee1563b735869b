package domain

import (
	"github.com/google/uuid"
)

// IdempotentResponse is the cached outcome of a submission, replayed when a
// client retries with the same Idempotency-Key.
type IdempotentResponse struct {
	StatusCode int    `json:"status_code"`
	Body       []byte `json:"body"`
}

// BuildSubmissionKey scopes a client key to the caller and the operation.
func BuildSubmissionKey(userID uuid.UUID, operation, clientKey string) string {
	return userID.String() + ":" + operation + ":" + clientKey
}
