package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateInvoiceNo derives the invoice number for a booking. The number
// is stable across renders of the same booking.
func GenerateInvoiceNo(prefix string, bookingID uuid.UUID) string {
	return prefix + "-" + strings.ToUpper(bookingID.String()[:8])
}
