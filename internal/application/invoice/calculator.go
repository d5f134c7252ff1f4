package invoice

import "fmt"

// Summary holds the derived financial figures for an invoice. All amounts
// are in cents. BalanceDue is the derived value max(total-amountPaid, 0);
// RecordedBalanceDue carries the booking record's own balance figure, which
// may disagree with the derived one. Both are exposed so callers choose
// which to present instead of the calculator guessing which is
// authoritative.
type Summary struct {
	Subtotal           int64
	TaxAmount          int64
	Total              int64
	AmountPaid         int64
	BalanceDue         int64
	RecordedBalanceDue int64
	TaxRate            float64
}

// Compute derives the financial summary from resolved line items, the
// booking's tax rate (a percentage in [0,100]) and the amount already paid.
//
// Tax is computed once on the aggregate subtotal. The per-addon IsTaxable
// flag is not a computation input; it exists for display only. Changing
// that would silently change financial output, so the aggregate-only
// behavior is kept deliberately.
//
// Any unresolved line fails the computation with a *MissingReferenceError
// naming the missing record, rather than corrupting the sum with a
// zero-value placeholder.
func Compute(lines []LineItem, taxRate float64, amountPaid, recordedBalanceDue int64) (*Summary, error) {
	if taxRate < 0 || taxRate > 100 {
		return nil, &ValidationError{Field: "tax_rate", Message: fmt.Sprintf("must be between 0 and 100, got %v", taxRate)}
	}
	if amountPaid < 0 {
		return nil, &ValidationError{Field: "amount_paid", Message: fmt.Sprintf("must not be negative, got %d", amountPaid)}
	}

	var subtotal int64
	for i := range lines {
		line := &lines[i]
		if line.Kind == LineUnresolved {
			return nil, &MissingReferenceError{Kind: string(line.Source), ID: line.OriginalID}
		}
		subtotal += line.Amount()
	}

	taxAmount := taxCents(subtotal, taxRate)
	total := subtotal + taxAmount

	balanceDue := total - amountPaid
	if balanceDue < 0 {
		balanceDue = 0
	}

	return &Summary{
		Subtotal:           subtotal,
		TaxAmount:          taxAmount,
		Total:              total,
		AmountPaid:         amountPaid,
		BalanceDue:         balanceDue,
		RecordedBalanceDue: recordedBalanceDue,
		TaxRate:            taxRate,
	}, nil
}

// taxCents computes subtotal × rate / 100 in integer arithmetic. The rate
// is scaled to basis points first so common rates like 7.5% divide exactly;
// any fractional cent remainder rounds half up. Keeping this in int64
// avoids float accumulation artifacts across large subtotals.
func taxCents(subtotal int64, rate float64) int64 {
	basisPoints := int64(rate*100 + 0.5)
	return (subtotal*basisPoints + 5000) / 10000
}
