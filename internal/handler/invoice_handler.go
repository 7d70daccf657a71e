package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/gst-billing-service/internal/model"
	"github.com/ridwanfathin/gst-billing-service/internal/repository"
	"github.com/ridwanfathin/gst-billing-service/internal/service"
)

// InvoiceHandler handles HTTP requests for invoice-related operations
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// Register mounts the invoice routes on the /api group
func (h *InvoiceHandler) Register(api *gin.RouterGroup) {
	invoices := api.Group("/invoices")
	invoices.POST("", h.CreateInvoice)
	invoices.GET("", h.ListInvoices)
	invoices.GET("/search/:query", h.SearchInvoices)
	invoices.GET("/:id", h.GetInvoice)
	invoices.DELETE("/:id", h.DeleteInvoice)
	invoices.GET("/:id/pdf", h.DownloadInvoicePDF)
	invoices.POST("/:id/archive", h.ArchiveInvoice)
}

// CreateInvoice handles the POST /api/invoices endpoint
// @Summary Create an invoice
// @Description Allocate the next invoice number, compute CGST/SGST totals and the amount in words, and store the invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body model.CreateInvoiceRequest true "Invoice details"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Invoice number already allocated"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if details, err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error(), details...)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, "failed_to_create_invoice", err, ErrInvoiceNotFound)
		return
	}

	respondOK(c, invoice)
}

// ListInvoices handles the GET /api/invoices endpoint
// @Summary List invoices
// @Description Invoices newest first
// @Tags invoices
// @Produce json
// @Param skip query int false "Number of invoices to skip" default(0)
// @Param limit query int false "Maximum number of invoices" default(100)
// @Success 200 {array} domain.Invoice
// @Failure 400 {object} model.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	skip, err := getQueryInt(c, "skip", 0)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("skip", err.Error()))
		return
	}

	limit, err := getQueryInt(c, "limit", repository.DefaultListLimit)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("limit", err.Error()))
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), skip, limit)
	if err != nil {
		respondServiceError(c, "failed_to_list_invoices", err, ErrInvoiceNotFound)
		return
	}

	respondOK(c, invoices)
}

// GetInvoice handles the GET /api/invoices/{id} endpoint
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, "failed_to_get_invoice", err, ErrInvoiceNotFound)
		return
	}

	respondOK(c, invoice)
}

// DeleteInvoice handles the DELETE /api/invoices/{id} endpoint
// @Summary Delete an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	invoiceID, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		respondServiceError(c, "failed_to_delete_invoice", err, ErrInvoiceNotFound)
		return
	}

	respondOK(c, model.MessageResponse{Message: MsgInvoiceDeleted})
}

// SearchInvoices handles the GET /api/invoices/search/{query} endpoint
// @Summary Search invoices
// @Description Case-insensitive match on customer name, customer mobile and invoice number
// @Tags invoices
// @Produce json
// @Param query path string true "Search text"
// @Success 200 {array} domain.Invoice
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/invoices/search/{query} [get]
func (h *InvoiceHandler) SearchInvoices(c *gin.Context) {
	query, err := getPathParam(c, "query")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoices, err := h.invoiceService.SearchInvoices(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, "failed_to_search_invoices", err, ErrInvoiceNotFound)
		return
	}

	respondOK(c, invoices)
}

// DownloadInvoicePDF handles the GET /api/invoices/{id}/pdf endpoint
// @Summary Download an invoice as PDF
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	invoiceID, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, pdfData, err := h.invoiceService.RenderInvoicePDF(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, "failed_to_render_invoice", err, ErrInvoiceNotFound)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, invoice.InvoiceNumber))
	c.Data(StatusOK, pdfContentType, pdfData)
}

// ArchiveInvoice handles the POST /api/invoices/{id}/archive endpoint
// @Summary Archive an invoice PDF
// @Description Render the invoice and upload the PDF to object storage
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} model.ArchiveResponse
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 503 {object} model.ErrorResponse "Archiving not configured"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/invoices/{id}/archive [post]
func (h *InvoiceHandler) ArchiveInvoice(c *gin.Context) {
	invoiceID, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	url, err := h.invoiceService.ArchiveInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, "failed_to_archive_invoice", err, ErrInvoiceNotFound)
		return
	}

	respondOK(c, model.ArchiveResponse{URL: url})
}
