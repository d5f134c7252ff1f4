package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/framelight/studio-api/internal/domain/repository"
	"github.com/google/uuid"
)

// DashboardStats aggregates the headline figures shown on the dashboard
type DashboardStats struct {
	TotalBookings    int64                         `json:"total_bookings"`
	StatusCounts     map[enum.BookingStatus]int64  `json:"status_counts"`
	CollectedCents   int64                         `json:"-"`
	OutstandingCents int64                         `json:"-"`
	Collected        float64                       `json:"collected"`
	Outstanding      float64                       `json:"outstanding"`
	UpcomingBookings []entity.Booking              `json:"upcoming_bookings"`
}

// DashboardService computes dashboard aggregates
type DashboardService struct {
	bookingRepo repository.BookingRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(bookingRepo repository.BookingRepository) *DashboardService {
	return &DashboardService{bookingRepo: bookingRepo}
}

// Stats gathers booking counts, financial totals and upcoming bookings.
// The three queries run concurrently and the result is only assembled
// once all of them have succeeded.
func (s *DashboardService) Stats(ctx context.Context, userID uuid.UUID, upcomingLimit int) (*DashboardStats, error) {
	if upcomingLimit <= 0 {
		upcomingLimit = 5
	}

	var (
		counts   map[enum.BookingStatus]int64
		totals   *repository.BookingTotals
		upcoming []entity.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.bookingRepo.CountByStatus(gctx, userID)
		if err != nil {
			return err
		}
		counts = c
		return nil
	})
	g.Go(func() error {
		t, err := s.bookingRepo.Totals(gctx, userID)
		if err != nil {
			return err
		}
		totals = t
		return nil
	})
	g.Go(func() error {
		u, err := s.bookingRepo.Upcoming(gctx, userID, upcomingLimit)
		if err != nil {
			return err
		}
		upcoming = u
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalBookings:    totals.BookingCount,
		StatusCounts:     counts,
		CollectedCents:   totals.CollectedCents,
		OutstandingCents: totals.DueCents,
		Collected:        float64(totals.CollectedCents) / 100,
		Outstanding:      float64(totals.DueCents) / 100,
		UpcomingBookings: upcoming,
	}
	return stats, nil
}
