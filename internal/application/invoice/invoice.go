// Package invoice implements the invoice aggregation engine: joining a
// booking's package and addon references against independently loaded
// catalogs and deriving the financial summary. Everything in this package
// is a pure, synchronous computation; data acquisition and presentation
// live with the callers.
package invoice

import "github.com/framelight/studio-api/internal/domain/entity"

// Invoice is the composed result handed to the presentation layer: the
// resolved lines plus the financial summary, so views never re-derive
// financial logic.
type Invoice struct {
	Lines   []LineItem
	Summary *Summary
}

// ComputeInvoice resolves the booking against the catalog and computes the
// financial summary in one call. The catalog must be fully loaded; a
// partial catalog surfaces as a *MissingReferenceError for whichever
// reference fails to resolve.
func ComputeInvoice(booking *entity.Booking, catalog *Catalog) (*Invoice, error) {
	lines := Resolve(booking, catalog)
	summary, err := Compute(lines, booking.TaxRate, booking.AmountPaid, booking.AmountDue)
	if err != nil {
		return nil, err
	}
	return &Invoice{Lines: lines, Summary: summary}, nil
}
