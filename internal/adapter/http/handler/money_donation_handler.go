package handler

import (
	"donation-ledger/internal/adapter/http/dto"
	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// MoneyDonationHandler serves the money donation verification workflow.
type MoneyDonationHandler struct {
	svc ports.MoneyDonationService
}

func NewMoneyDonationHandler(svc ports.MoneyDonationService) *MoneyDonationHandler {
	return &MoneyDonationHandler{svc: svc}
}

// Submit handles POST /api/v1/money-donations.
func (h *MoneyDonationHandler) Submit(c *gin.Context) {
	donorID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.SubmitDonationRequest
	if !bindJSON(c, &req) {
		return
	}

	donation, err := h.svc.Submit(c.Request.Context(), ports.SubmitDonationRequest{
		DonorID:               donorID,
		Amount:                req.Amount,
		PaymentMethod:         req.PaymentMethod,
		ExternalTransactionID: req.ExternalTransactionID,
		ProofRef:              req.ProofRef,
		Notes:                 req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, donation)
}

// ListMine handles GET /api/v1/money-donations/mine.
func (h *MoneyDonationHandler) ListMine(c *gin.Context) {
	donorID, ok := callerID(c)
	if !ok {
		return
	}
	donations, err := h.svc.ListByDonor(c.Request.Context(), donorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, donations)
}

// ListPending handles GET /api/v1/money-donations/pending.
func (h *MoneyDonationHandler) ListPending(c *gin.Context) {
	donations, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, donations)
}

// Get handles GET /api/v1/money-donations/:id.
func (h *MoneyDonationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	donation, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, donation)
}

// Approve handles POST /api/v1/money-donations/:id/approve.
func (h *MoneyDonationHandler) Approve(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.svc.Approve(c.Request.Context(), id, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Reject handles POST /api/v1/money-donations/:id/reject.
func (h *MoneyDonationHandler) Reject(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.Reject(c.Request.Context(), id, adminID, req.Reason); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "status": domain.MoneyDonationRejected})
}

// RequestReview handles POST /api/v1/money-donations/:id/request-review.
func (h *MoneyDonationHandler) RequestReview(c *gin.Context) {
	donorID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.RequestReview(c.Request.Context(), id, donorID, req.Reason); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "review_requested": true})
}
