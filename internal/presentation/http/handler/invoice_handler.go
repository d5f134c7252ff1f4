package handler

import (
	"fmt"

	"github.com/framelight/studio-api/internal/application/invoice"
	"github.com/framelight/studio-api/internal/application/service"
	"github.com/framelight/studio-api/internal/config"
	"github.com/framelight/studio-api/internal/presentation/http/dto/response"
	"github.com/framelight/studio-api/pkg/pdf"
	"github.com/framelight/studio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	cfg            *config.InvoiceConfig
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, cfg *config.InvoiceConfig) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, cfg: cfg}
}

// Get handles building the invoice view for a booking
func (h *InvoiceHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	view, err := h.invoiceService.BuildInvoice(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := response.NewInvoiceResponse(view.Booking, view.Invoice, h.cfg.StudioName, h.cfg.Currency, h.cfg.NumberPrefix)
	response.OK(c, "Invoice generated successfully", resp)
}

// GetPDF handles rendering the invoice as a PDF document
func (h *InvoiceHandler) GetPDF(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	view, err := h.invoiceService.BuildInvoice(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	booking := view.Booking
	summary := view.Invoice.Summary

	lines := make([]pdf.InvoiceLine, 0, len(view.Invoice.Lines))
	for i := range view.Invoice.Lines {
		line := &view.Invoice.Lines[i]
		switch line.Kind {
		case invoice.LinePackage:
			lines = append(lines, pdf.InvoiceLine{
				Description: line.Package.Name,
				Quantity:    1,
				UnitCents:   line.Package.Price,
				AmountCents: line.Amount(),
			})
		case invoice.LineAddon:
			lines = append(lines, pdf.InvoiceLine{
				Description: line.Addon.Description,
				Quantity:    line.Quantity,
				UnitCents:   line.Addon.Price,
				AmountCents: line.Amount(),
			})
		}
	}

	invoiceNo := utils.GenerateInvoiceNo(h.cfg.NumberPrefix, booking.ID)
	data := &pdf.InvoiceData{
		InvoiceNumber: invoiceNo,
		StudioName:    h.cfg.StudioName,
		ClientName:    booking.ClientName,
		ClientContact: booking.ClientContact,
		ClientAddress: booking.ClientAddress,
		EventType:     booking.EventType,
		EventDate:     booking.EventDate,
		Venue:         booking.Venue,
		DueDate:       booking.DueDate,
		Currency:      h.cfg.Currency,
		Lines:         lines,
		SubtotalCents: summary.Subtotal,
		TaxRate:       summary.TaxRate,
		TaxCents:      summary.TaxAmount,
		TotalCents:    summary.Total,
		PaidCents:     summary.AmountPaid,
		BalanceCents:  summary.BalanceDue,
	}

	doc, err := pdf.RenderInvoice(data)
	if err != nil {
		response.InternalServerError(c, "Failed to render invoice PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoiceNo))
	c.Data(200, "application/pdf", doc)
}
