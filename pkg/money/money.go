// Package money formats cent amounts for display. Amounts stay int64 cents
// throughout the system; this is the only place presentation rounding and
// currency symbols appear.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"KES": "KSh ",
}

// Symbol returns the display symbol for an ISO currency code
func Symbol(currency string) string {
	if symbol, exists := symbols[currency]; exists {
		return symbol
	}
	return "$"
}

// FormatCents renders a cent amount as a currency string with thousands
// separators, e.g. 190000 with "USD" becomes "$1,900.00".
func FormatCents(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100
	return fmt.Sprintf("%s%s%s.%02d", sign, Symbol(currency), groupThousands(whole), frac)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
