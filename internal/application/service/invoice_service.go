package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/framelight/studio-api/internal/application/invoice"
	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/repository"
	"github.com/framelight/studio-api/pkg/apperror"
	"github.com/google/uuid"
)

// InvoiceView is the fully assembled invoice for a booking: the booking
// itself, the resolved line items and the computed totals.
type InvoiceView struct {
	Booking *entity.Booking
	Invoice *invoice.Invoice
}

// InvoiceService assembles invoices from bookings and the service catalog
type InvoiceService struct {
	bookingRepo repository.BookingRepository
	packageRepo repository.PackageRepository
	addonRepo   repository.AddonRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	bookingRepo repository.BookingRepository,
	packageRepo repository.PackageRepository,
	addonRepo repository.AddonRepository,
) *InvoiceService {
	return &InvoiceService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		addonRepo:   addonRepo,
	}
}

// BuildInvoice fetches the booking and both catalogs concurrently, then
// resolves and totals the invoice. The three fetches form a barrier: the
// invoice is only computed once all of them have succeeded, and any
// failure fails the whole view.
func (s *InvoiceService) BuildInvoice(ctx context.Context, userID, bookingID uuid.UUID) (*InvoiceView, error) {
	var (
		booking  *entity.Booking
		packages []entity.ServicePackage
		addons   []entity.Addon
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.bookingRepo.GetWithRefs(gctx, bookingID)
		if err != nil {
			return fmt.Errorf("fetch booking: %w", err)
		}
		booking = b
		return nil
	})
	g.Go(func() error {
		p, err := s.packageRepo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("fetch packages: %w", err)
		}
		packages = p
		return nil
	})
	g.Go(func() error {
		a, err := s.addonRepo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("fetch addons: %w", err)
		}
		addons = a
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	if booking.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	inv, err := invoice.ComputeInvoice(booking, invoice.NewCatalog(packages, addons))
	if err != nil {
		return nil, mapInvoiceError(err)
	}

	return &InvoiceView{Booking: booking, Invoice: inv}, nil
}

// mapInvoiceError translates domain invoice errors into HTTP-aware ones.
// A dangling catalog reference is the caller's data problem, not ours,
// so it surfaces as unprocessable rather than a server error.
func mapInvoiceError(err error) error {
	var missing *invoice.MissingReferenceError
	if errors.As(err, &missing) {
		return apperror.NewUnprocessableError(missing.Error())
	}
	var invalid *invoice.ValidationError
	if errors.As(err, &invalid) {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: invalid.Field, Message: invalid.Message},
		})
	}
	return err
}
