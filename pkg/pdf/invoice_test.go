package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvoice(t *testing.T) {
	due := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	data := &InvoiceData{
		InvoiceNumber: "INV-ABCD1234",
		StudioName:    "Framelight Studio",
		ClientName:    "Jordan Reyes",
		ClientContact: "jordan@example.com",
		EventType:     "Wedding",
		EventDate:     time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		Venue:         "Lakeside Pavilion",
		DueDate:       &due,
		Currency:      "USD",
		Lines: []InvoiceLine{
			{Description: "Full Day Wedding", Quantity: 1, UnitCents: 150000, AmountCents: 150000},
			{Description: "Extra Album", Quantity: 2, UnitCents: 20000, AmountCents: 40000},
		},
		SubtotalCents: 190000,
		TaxRate:       7.5,
		TaxCents:      14250,
		TotalCents:    204250,
		PaidCents:     50000,
		BalanceCents:  154250,
	}

	out, err := RenderInvoice(data)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	// PDF magic header
	assert.Equal(t, "%PDF", string(out[:4]))
}
