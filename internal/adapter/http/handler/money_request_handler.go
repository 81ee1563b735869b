package handler

import (
	"donation-ledger/internal/adapter/http/dto"
	"donation-ledger/internal/adapter/http/middleware"
	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MoneyRequestHandler serves the money request approval workflow.
type MoneyRequestHandler struct {
	svc ports.MoneyRequestService
}

func NewMoneyRequestHandler(svc ports.MoneyRequestService) *MoneyRequestHandler {
	return &MoneyRequestHandler{svc: svc}
}

// Submit handles POST /api/v1/money-requests.
func (h *MoneyRequestHandler) Submit(c *gin.Context) {
	requesterID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.SubmitMoneyRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.svc.Submit(c.Request.Context(), ports.SubmitMoneyRequest{
		RequesterID:   requesterID,
		Amount:        req.Amount,
		Purpose:       req.Purpose,
		Distance:      req.Distance,
		TransportRate: req.TransportRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewMoneyRequestResponse(request))
}

// List handles GET /api/v1/money-requests?status=&requester_id=.
func (h *MoneyRequestHandler) List(c *gin.Context) {
	var filter domain.MoneyRequestFilter
	if s := c.Query("status"); s != "" {
		status := domain.MoneyRequestStatus(s)
		filter.Status = &status
	}
	if r := c.Query("requester_id"); r != "" {
		id, err := uuid.Parse(r)
		if err != nil {
			response.Error(c, apperror.Validation("invalid requester_id"))
			return
		}
		filter.RequesterID = &id
	}

	requests, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]dto.MoneyRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, dto.NewMoneyRequestResponse(&requests[i]))
	}
	response.OK(c, items)
}

// Get handles GET /api/v1/money-requests/:id. Non-admins only see their own
// requests; anything else reads as not found.
func (h *MoneyRequestHandler) Get(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	request, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if role, _ := middleware.Role(c); role != domain.RoleAdmin && request.RequesterID != caller {
		response.Error(c, apperror.ErrNotFound(domain.EntityMoneyRequest))
		return
	}
	response.OK(c, dto.NewMoneyRequestResponse(request))
}

// Stats handles GET /api/v1/money-requests/stats.
func (h *MoneyRequestHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// Approve handles POST /api/v1/money-requests/:id/approve.
func (h *MoneyRequestHandler) Approve(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ApproveMoneyRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.svc.Approve(c.Request.Context(), ports.ApproveMoneyRequest{
		RequestID:          id,
		AdminID:            adminID,
		BankAccountID:      uuid.MustParse(req.BankAccountID),
		AccountType:        req.AccountType,
		WithdrawalProofRef: req.WithdrawalProofRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Reject handles POST /api/v1/money-requests/:id/reject.
func (h *MoneyRequestHandler) Reject(c *gin.Context) {
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
	response.OK(c, gin.H{"id": id, "status": domain.MoneyRequestRejected})
}
