package handler

import (
	"github.com/flowbit/analytics-api/internal/application/service"
	"github.com/flowbit/analytics-api/internal/presentation/http/dto/response"
	"github.com/flowbit/analytics-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice listing, ingest and payments
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	params := pagination.DefaultListParams()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	list, err := h.invoiceService.List(
		c.Request.Context(),
		c.Query("q"),
		c.Query("status"),
		c.Query("vendor"),
		c.Query("from"),
		c.Query("to"),
		params,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.PresentInvoiceList(list))
}

// Create handles POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid invoice payload: "+err.Error())
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, invoice)
}

// AddPayment handles POST /invoices/:id/payments
func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice id")
		return
	}

	var input service.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid payment payload: "+err.Error())
		return
	}

	payment, err := h.invoiceService.ApplyPayment(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payment)
}
