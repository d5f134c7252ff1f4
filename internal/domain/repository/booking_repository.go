package repository

import (
	"context"
	"time"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/framelight/studio-api/pkg/pagination"
	"github.com/google/uuid"
)

// BookingFilterParams contains filtering parameters for booking queries
type BookingFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Status        *enum.BookingStatus
	PaymentStatus *enum.PaymentStatus
	From          *time.Time
	To            *time.Time
}

// BookingTotals aggregates financial figures across bookings for the dashboard
type BookingTotals struct {
	BookingCount   int64
	CollectedCents int64
	DueCents       int64
}

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	// GetByID retrieves a booking without its reference lists
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// GetWithRefs retrieves a booking with its package and addon references
	// ordered by sort_order, as required for invoice resolution
	GetWithRefs(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *BookingFilterParams) ([]entity.Booking, int64, error)
	// ReplaceRefs replaces a booking's package and addon references wholesale,
	// preserving the given order
	ReplaceRefs(ctx context.Context, bookingID uuid.UUID, packageIDs, addonIDs []uuid.UUID) error
	// Upcoming returns bookings with an event date from now onward
	Upcoming(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Booking, error)
	// CountByStatus returns booking counts grouped by status
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[enum.BookingStatus]int64, error)
	// Totals aggregates collected and outstanding amounts
	Totals(ctx context.Context, userID uuid.UUID) (*BookingTotals, error)
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]entity.Payment, error)
}
