package handler

import (
	"donation-ledger/internal/adapter/http/dto"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// BankAccountHandler manages the caller's payout destinations.
type BankAccountHandler struct {
	svc ports.BankAccountService
}

func NewBankAccountHandler(svc ports.BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{svc: svc}
}

// Add handles POST /api/v1/bank-accounts.
func (h *BankAccountHandler) Add(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.AddBankAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.svc.Add(c.Request.Context(), ports.AddBankAccountRequest{
		OwnerID:           ownerID,
		AccountHolderName: req.AccountHolderName,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		IBAN:              req.IBAN,
		BranchCode:        req.BranchCode,
		AccountType:       req.AccountType,
		IsDefault:         req.IsDefault,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, account)
}

// List handles GET /api/v1/bank-accounts.
func (h *BankAccountHandler) List(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	accounts, err := h.svc.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, accounts)
}

// Get handles GET /api/v1/bank-accounts/:id.
func (h *BankAccountHandler) Get(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	account, err := h.svc.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, account)
}
