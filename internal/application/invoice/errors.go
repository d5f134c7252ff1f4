package invoice

import (
	"fmt"

	"github.com/google/uuid"
)

// MissingReferenceError reports a booking reference that has no matching
// catalog entry. It indicates data inconsistency rather than unavailability,
// so callers surface it distinctly from transport failures.
type MissingReferenceError struct {
	Kind string    // "package" or "addon"
	ID   uuid.UUID // the unmatched reference
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("booking references unknown %s %s", e.Kind, e.ID)
}

// ValidationError reports a malformed numeric field on the booking record.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
