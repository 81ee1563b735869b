package handler

import (
	"context"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HandoffHandler serves the two-party physical handoff confirmation.
type HandoffHandler struct {
	svc ports.HandoffService
}

func NewHandoffHandler(svc ports.HandoffService) *HandoffHandler {
	return &HandoffHandler{svc: svc}
}

// ConfirmSent handles POST /api/v1/donations/:id/confirm-sent.
func (h *HandoffHandler) ConfirmSent(c *gin.Context) {
	h.confirm(c, h.svc.ConfirmSent)
}

// ConfirmReceived handles POST /api/v1/donations/:id/confirm-received.
func (h *HandoffHandler) ConfirmReceived(c *gin.Context) {
	h.confirm(c, h.svc.ConfirmReceived)
}

func (h *HandoffHandler) confirm(c *gin.Context, op func(ctx context.Context, donationID, callerID uuid.UUID) (*domain.PhysicalDonation, error)) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	donation, err := op(c.Request.Context(), id, caller)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, donation)
}
