package invoice

import (
	"errors"
	"testing"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packageLine(price int64) LineItem {
	return LineItem{
		Kind:     LinePackage,
		Package:  &entity.ServicePackage{ID: uuid.New(), Price: price},
		Quantity: 1,
		Source:   LinePackage,
	}
}

func addonLine(price int64, qty int, taxable bool) LineItem {
	return LineItem{
		Kind:     LineAddon,
		Addon:    &entity.Addon{ID: uuid.New(), Price: price, Quantity: qty, IsTaxable: taxable},
		Quantity: qty,
		Source:   LineAddon,
	}
}

func TestComputeEmptyLines(t *testing.T) {
	summary, err := Compute(nil, 7.5, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Subtotal)
	assert.Equal(t, int64(0), summary.TaxAmount)
	assert.Equal(t, int64(0), summary.Total)
	assert.Equal(t, int64(0), summary.BalanceDue)
}

func TestComputeReferenceScenario(t *testing.T) {
	// One 1500.00 package plus a 200.00 addon at quantity 2, 7.5% tax
	lines := []LineItem{packageLine(150000), addonLine(20000, 2, true)}

	summary, err := Compute(lines, 7.5, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(190000), summary.Subtotal)
	assert.Equal(t, int64(14250), summary.TaxAmount)
	assert.Equal(t, int64(204250), summary.Total)
	assert.Equal(t, int64(204250), summary.BalanceDue)
	assert.Equal(t, 7.5, summary.TaxRate)
}

func TestComputeBalanceDue(t *testing.T) {
	lines := []LineItem{packageLine(150000), addonLine(20000, 2, true)}

	paid, err := Compute(lines, 7.5, 204250, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), paid.BalanceDue)

	partial, err := Compute(lines, 7.5, 50000, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(154250), partial.BalanceDue)
}

func TestComputeOverpaymentClampsToZero(t *testing.T) {
	lines := []LineItem{packageLine(10000)}
	summary, err := Compute(lines, 0, 999999, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.BalanceDue)
}

func TestComputeZeroTaxRate(t *testing.T) {
	lines := []LineItem{packageLine(150000)}
	summary, err := Compute(lines, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TaxAmount)
	assert.Equal(t, summary.Subtotal, summary.Total)
}

func TestComputeTotalIsExactSum(t *testing.T) {
	lines := []LineItem{packageLine(123457), addonLine(9999, 3, false)}
	summary, err := Compute(lines, 16, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, summary.Subtotal+summary.TaxAmount, summary.Total)
}

func TestComputeTaxableFlagDoesNotChangeSubtotal(t *testing.T) {
	// Tax is computed on the aggregate; IsTaxable is display-only
	taxable := []LineItem{addonLine(10000, 1, true)}
	nonTaxable := []LineItem{addonLine(10000, 1, false)}

	a, err := Compute(taxable, 10, 0, 0)
	require.NoError(t, err)
	b, err := Compute(nonTaxable, 10, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, a.Subtotal, b.Subtotal)
	assert.Equal(t, a.TaxAmount, b.TaxAmount)
	assert.Equal(t, a.Total, b.Total)
}

func TestComputeUnresolvedLineFails(t *testing.T) {
	missing := uuid.New()
	lines := []LineItem{
		packageLine(150000),
		{Kind: LineUnresolved, OriginalID: missing, Source: LinePackage},
	}

	summary, err := Compute(lines, 7.5, 0, 0)
	assert.Nil(t, summary)

	var refErr *MissingReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, missing, refErr.ID)
	assert.Equal(t, "package", refErr.Kind)
	assert.Contains(t, err.Error(), missing.String())
}

func TestComputeRejectsTaxRateOutOfRange(t *testing.T) {
	var valErr *ValidationError

	_, err := Compute(nil, -1, 0, 0)
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "tax_rate", valErr.Field)

	_, err = Compute(nil, 100.5, 0, 0)
	assert.Error(t, err)
}

func TestComputeRejectsNegativeAmountPaid(t *testing.T) {
	var valErr *ValidationError
	_, err := Compute(nil, 0, -100, 0)
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "amount_paid", valErr.Field)
}

func TestComputeCarriesRecordedBalance(t *testing.T) {
	// The record-supplied balance passes through untouched next to the
	// derived one; callers pick which to present.
	lines := []LineItem{packageLine(100000)}
	summary, err := Compute(lines, 0, 30000, 75000)
	require.NoError(t, err)
	assert.Equal(t, int64(70000), summary.BalanceDue)
	assert.Equal(t, int64(75000), summary.RecordedBalanceDue)
}

func TestTaxCentsExactForCommonRates(t *testing.T) {
	assert.Equal(t, int64(14250), taxCents(190000, 7.5))
	assert.Equal(t, int64(16000), taxCents(100000, 16))
	assert.Equal(t, int64(0), taxCents(190000, 0))
	assert.Equal(t, int64(190000), taxCents(190000, 100))
	// Fractional cents round half up
	assert.Equal(t, int64(8), taxCents(105, 7.5))
}
