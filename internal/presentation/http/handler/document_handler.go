package handler

import (
	"github.com/flowbit/analytics-api/internal/application/service"
	"github.com/flowbit/analytics-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DocumentHandler handles uploaded document registration
type DocumentHandler struct {
	invoiceService *service.InvoiceService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(invoiceService *service.InvoiceService) *DocumentHandler {
	return &DocumentHandler{invoiceService: invoiceService}
}

type registerDocumentRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes" binding:"omitempty,gte=0"`
}

// Register handles POST /documents
func (h *DocumentHandler) Register(c *gin.Context) {
	var req registerDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid document payload: "+err.Error())
		return
	}

	document, err := h.invoiceService.RegisterDocument(c.Request.Context(), req.Filename, req.ContentType, req.SizeBytes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, document)
}
