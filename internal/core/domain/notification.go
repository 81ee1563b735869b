package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a notification event; it doubles as the
// routing key on the message broker.
type NotificationType string

const (
	NotificationDonationSubmitted     NotificationType = "money_donation.submitted"
	NotificationDonationApproved      NotificationType = "money_donation.approved"
	NotificationDonationRejected      NotificationType = "money_donation.rejected"
	NotificationDonationReviewRequest NotificationType = "money_donation.review_requested"
	NotificationRequestSubmitted      NotificationType = "money_request.submitted"
	NotificationRequestApproved       NotificationType = "money_request.approved"
	NotificationRequestRejected       NotificationType = "money_request.rejected"
	NotificationHandoffCompleted      NotificationType = "handoff.completed"
)

// AudienceAdmins addresses an event to every administrator.
const AudienceAdmins = "admins"

// Notification is the message delivered to a user. RecipientID is nil for
// admin-facing events.
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	RecipientID *uuid.UUID       `json:"user_id,omitempty"`
	Audience    string           `json:"audience,omitempty"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Payload     map[string]any   `json:"payload,omitempty"`
	Read        bool             `json:"read"`
	CreatedAt   time.Time        `json:"created_at"`
}

// OutboxStatus is the delivery state of an outbox row.
type OutboxStatus string

const (
	OutboxPending    OutboxStatus = "pending"
	OutboxProcessing OutboxStatus = "processing"
	OutboxPublished  OutboxStatus = "published"
	OutboxFailed     OutboxStatus = "failed"
)

// OutboxMessage is a notification persisted in the same transaction as the
// workflow transition that produced it.
type OutboxMessage struct {
	ID           uuid.UUID    `json:"id"`
	Notification Notification `json:"notification"`
	Status       OutboxStatus `json:"status"`
	Attempts     int          `json:"attempts"`
	NextAttempt  time.Time    `json:"next_attempt_at"`
	LastError    *string      `json:"last_error,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
