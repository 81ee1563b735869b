package handler

import (
	"donation-ledger/internal/adapter/http/dto"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProofHandler accepts payment and transfer proof uploads.
type ProofHandler struct {
	svc ports.ProofService
}

func NewProofHandler(svc ports.ProofService) *ProofHandler {
	return &ProofHandler{svc: svc}
}

// Upload handles POST /api/v1/proofs (multipart field "file").
func (h *ProofHandler) Upload(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Validation("multipart field \"file\" is required"))
		return
	}
	file, err := header.Open()
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	defer file.Close()

	url, err := h.svc.Upload(c.Request.Context(), ports.UploadProofRequest{
		OwnerID:     ownerID,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ProofUploadResponse{URL: url})
}
