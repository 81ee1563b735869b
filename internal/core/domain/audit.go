package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AdminActionType names an administrator decision recorded in the audit log.
type AdminActionType string

const (
	AdminActionApproveDonation AdminActionType = "approve_money_donation"
	AdminActionRejectDonation  AdminActionType = "reject_money_donation"
	AdminActionApproveRequest  AdminActionType = "approve_money_request"
	AdminActionRejectRequest   AdminActionType = "reject_money_request"
	AdminActionFundAdjustment  AdminActionType = "fund_adjustment"
)

// AdminAction is an append-only audit entry for an administrator decision.
type AdminAction struct {
	ID         uuid.UUID       `json:"id"`
	AdminID    uuid.UUID       `json:"admin_id"`
	Action     AdminActionType `json:"action"`
	TargetType string          `json:"target_type"`
	TargetID   uuid.UUID       `json:"target_id"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
