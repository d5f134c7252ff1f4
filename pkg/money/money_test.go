package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCents(0, "USD"))
	assert.Equal(t, "$1,900.00", FormatCents(190000, "USD"))
	assert.Equal(t, "$2,042.50", FormatCents(204250, "USD"))
	assert.Equal(t, "$1,234,567.89", FormatCents(123456789, "USD"))
	assert.Equal(t, "$0.05", FormatCents(5, "USD"))
	assert.Equal(t, "-$12.34", FormatCents(-1234, "USD"))
	assert.Equal(t, "€150.00", FormatCents(15000, "EUR"))
}

func TestSymbolFallsBackToDollar(t *testing.T) {
	assert.Equal(t, "$", Symbol("XXX"))
}
