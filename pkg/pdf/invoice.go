// Package pdf renders invoices as PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/framelight/studio-api/pkg/money"
	"github.com/jung-kurt/gofpdf"
)

// InvoiceLine is one printable invoice row
type InvoiceLine struct {
	Description string
	Quantity    int
	UnitCents   int64
	AmountCents int64
}

// InvoiceData carries everything needed to render an invoice PDF. All
// amounts are cents; formatting happens at render time.
type InvoiceData struct {
	InvoiceNumber string
	StudioName    string
	ClientName    string
	ClientContact string
	ClientAddress string
	EventType     string
	EventDate     time.Time
	Venue         string
	DueDate       *time.Time
	Currency      string

	Lines         []InvoiceLine
	SubtotalCents int64
	TaxRate       float64
	TaxCents      int64
	TotalCents    int64
	PaidCents     int64
	BalanceCents  int64
}

// RenderInvoice produces the invoice as a PDF document
func RenderInvoice(data *InvoiceData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 8, data.StudioName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 24)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, fmt.Sprintf("Invoice Number: %s", data.InvoiceNumber))
	pdf.Cell(60, 6, fmt.Sprintf("Date: %s", time.Now().Format("January 2, 2006")))
	pdf.Ln(6)
	if data.DueDate != nil {
		pdf.Cell(60, 6, fmt.Sprintf("Due Date: %s", data.DueDate.Format("January 2, 2006")))
	}
	pdf.Cell(60, 6, fmt.Sprintf("Currency: %s", data.Currency))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Bill To:")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, data.ClientName)
	pdf.Ln(5)
	if data.ClientAddress != "" {
		pdf.Cell(0, 5, data.ClientAddress)
		pdf.Ln(5)
	}
	if data.ClientContact != "" {
		pdf.Cell(0, 5, data.ClientContact)
		pdf.Ln(5)
	}
	pdf.Ln(5)

	pdf.Cell(0, 5, fmt.Sprintf("%s at %s on %s", data.EventType, data.Venue, data.EventDate.Format("January 2, 2006")))
	pdf.Ln(10)

	// Table headers
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.Cell(100, 8, "Description")
	pdf.Cell(25, 8, "Qty")
	pdf.Cell(35, 8, "Unit Price")
	pdf.Cell(40, 8, "Amount")
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	for _, line := range data.Lines {
		pdf.Cell(100, 6, line.Description)
		pdf.Cell(25, 6, fmt.Sprintf("%d", line.Quantity))
		pdf.Cell(35, 6, money.FormatCents(line.UnitCents, data.Currency))
		pdf.Cell(40, 6, money.FormatCents(line.AmountCents, data.Currency))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(5)

	writeTotal := func(label string, cents int64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.Cell(125, 6, "")
		pdf.Cell(35, 6, label)
		pdf.Cell(40, 6, money.FormatCents(cents, data.Currency))
		pdf.Ln(6)
	}

	writeTotal("Subtotal", data.SubtotalCents, false)
	writeTotal(fmt.Sprintf("Tax (%.2f%%)", data.TaxRate), data.TaxCents, false)
	writeTotal("Total", data.TotalCents, true)
	writeTotal("Amount Paid", data.PaidCents, false)
	writeTotal("Balance Due", data.BalanceCents, true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
