package enum

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Valid reports whether the status is one of the known values.
// Unknown values are tolerated on read so that externally imported
// bookings with other statuses still render.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusConfirmed, PaymentStatusCompleted:
		return true
	}
	return false
}
