package handler

import (
	"strconv"

	"donation-ledger/internal/adapter/http/dto"
	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// FundHandler exposes the fund balance and its transaction log.
type FundHandler struct {
	ledger ports.FundLedger
}

func NewFundHandler(ledger ports.FundLedger) *FundHandler {
	return &FundHandler{ledger: ledger}
}

// Balance handles GET /api/v1/fund-balance.
func (h *FundHandler) Balance(c *gin.Context) {
	balance, err := h.ledger.Balance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, balance)
}

// ListTransactions handles GET /api/v1/fund-transactions.
func (h *FundHandler) ListTransactions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := domain.TransactionFilter{Page: page, PageSize: pageSize}
	if k := c.Query("kind"); k != "" {
		kind := domain.TransactionKind(k)
		filter.Kind = &kind
	}
	if cat := c.Query("category"); cat != "" {
		category := domain.TransactionCategory(cat)
		filter.Category = &category
	}

	records, total, err := h.ledger.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	// Echo the paging the ledger applied.
	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.PageSize < 1:
		filter.PageSize = 20
	case filter.PageSize > 100:
		filter.PageSize = 100
	}
	response.OK(c, response.PageResponse{
		Items:    records,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// Adjust handles POST /api/v1/fund-adjustments.
func (h *FundHandler) Adjust(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.AdjustmentRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.ledger.Adjust(c.Request.Context(), ports.AdjustmentRequest{
		AdminID:     adminID,
		Kind:        domain.TransactionKind(req.Kind),
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}
