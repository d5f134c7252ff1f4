package enum

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusInquiry   BookingStatus = "inquiry"
	BookingStatusScheduled BookingStatus = "scheduled"
	BookingStatusDelivered BookingStatus = "delivered"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether the status is one of the known values
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusInquiry, BookingStatusScheduled, BookingStatusDelivered, BookingStatusCancelled:
		return true
	}
	return false
}
