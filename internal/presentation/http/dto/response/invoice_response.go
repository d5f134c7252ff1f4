package response

import (
	"fmt"
	"time"

	"github.com/framelight/studio-api/internal/application/invoice"
	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/pkg/money"
	"github.com/framelight/studio-api/pkg/utils"
)

// InvoiceLineResponse is one display-ready invoice row. Prices arrive
// formatted; clients never re-derive money from raw numbers.
type InvoiceLineResponse struct {
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Deliverables []string `json:"deliverables,omitempty"`
	Quantity     int      `json:"quantity"`
	UnitPrice    string   `json:"unit_price"`
	Amount       string   `json:"amount"`
	Taxable      *bool    `json:"taxable,omitempty"`
}

// InvoiceSummaryResponse carries the formatted financial summary. Both the
// derived balance and the booking's recorded balance are included.
type InvoiceSummaryResponse struct {
	Subtotal           string `json:"subtotal"`
	TaxLabel           string `json:"tax_label"`
	TaxAmount          string `json:"tax_amount"`
	Total              string `json:"total"`
	AmountPaid         string `json:"amount_paid"`
	BalanceDue         string `json:"balance_due"`
	RecordedBalanceDue string `json:"recorded_balance_due"`
}

// InvoiceBillToResponse identifies the invoiced party
type InvoiceBillToResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Address string `json:"address,omitempty"`
}

// InvoiceEventResponse describes the booked event
type InvoiceEventResponse struct {
	Type  string `json:"type"`
	Date  string `json:"date"`
	Venue string `json:"venue,omitempty"`
}

// InvoiceResponse is the full invoice view model
type InvoiceResponse struct {
	InvoiceNumber string                 `json:"invoice_number"`
	StudioName    string                 `json:"studio_name"`
	IssuedDate    string                 `json:"issued_date"`
	DueDate       *string                `json:"due_date,omitempty"`
	Currency      string                 `json:"currency"`
	BillTo        InvoiceBillToResponse  `json:"bill_to"`
	Event         InvoiceEventResponse   `json:"event"`
	Lines         []InvoiceLineResponse  `json:"lines"`
	Summary       InvoiceSummaryResponse `json:"summary"`
}

// NewInvoiceResponse formats an assembled invoice for display. Dates are
// rendered as ISO dates and amounts as currency strings.
func NewInvoiceResponse(booking *entity.Booking, inv *invoice.Invoice, studioName, currency, numberPrefix string) *InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for i := range inv.Lines {
		line := &inv.Lines[i]
		switch line.Kind {
		case invoice.LinePackage:
			lines = append(lines, InvoiceLineResponse{
				Type:         string(invoice.LinePackage),
				Description:  line.Package.Name,
				Deliverables: line.Package.DeliverableList(),
				Quantity:     1,
				UnitPrice:    money.FormatCents(line.Package.Price, currency),
				Amount:       money.FormatCents(line.Amount(), currency),
			})
		case invoice.LineAddon:
			taxable := line.Addon.IsTaxable
			lines = append(lines, InvoiceLineResponse{
				Type:        string(invoice.LineAddon),
				Description: line.Addon.Description,
				Quantity:    line.Quantity,
				UnitPrice:   money.FormatCents(line.Addon.Price, currency),
				Amount:      money.FormatCents(line.Amount(), currency),
				Taxable:     &taxable,
			})
		}
	}

	summary := inv.Summary
	resp := &InvoiceResponse{
		InvoiceNumber: utils.GenerateInvoiceNo(numberPrefix, booking.ID),
		StudioName:    studioName,
		IssuedDate:    time.Now().UTC().Format("2006-01-02"),
		Currency:      currency,
		BillTo: InvoiceBillToResponse{
			Name:    booking.ClientName,
			Contact: booking.ClientContact,
			Address: booking.ClientAddress,
		},
		Event: InvoiceEventResponse{
			Type:  booking.EventType,
			Date:  booking.EventDate.Format("2006-01-02"),
			Venue: booking.Venue,
		},
		Lines: lines,
		Summary: InvoiceSummaryResponse{
			Subtotal:           money.FormatCents(summary.Subtotal, currency),
			TaxLabel:           fmt.Sprintf("Tax (%.2f%%)", summary.TaxRate),
			TaxAmount:          money.FormatCents(summary.TaxAmount, currency),
			Total:              money.FormatCents(summary.Total, currency),
			AmountPaid:         money.FormatCents(summary.AmountPaid, currency),
			BalanceDue:         money.FormatCents(summary.BalanceDue, currency),
			RecordedBalanceDue: money.FormatCents(summary.RecordedBalanceDue, currency),
		},
	}

	if booking.DueDate != nil {
		due := booking.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}

	return resp
}
