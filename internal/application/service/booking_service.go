package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/framelight/studio-api/internal/domain/repository"
	"github.com/framelight/studio-api/pkg/apperror"
	"github.com/google/uuid"
)

// BookingService handles booking business logic
type BookingService struct {
	bookingRepo repository.BookingRepository
	clientRepo  repository.ClientRepository
	paymentRepo repository.PaymentRepository
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	clientRepo repository.ClientRepository,
	paymentRepo repository.PaymentRepository,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
	}
}

// CreateBookingInput represents the create booking input
type CreateBookingInput struct {
	UserID        uuid.UUID
	ClientID      *uuid.UUID
	ClientName    string
	ClientContact string
	ClientAddress string
	EventDate     time.Time
	Venue         string
	EventType     string
	Description   *string
	TaxRate       float64
	AmountPaid    float64
	AmountDue     float64
	DueDate       *time.Time
	Status        enum.BookingStatus
	PackageIDs    []uuid.UUID
	AddonIDs      []uuid.UUID
}

// CreateBooking creates a new booking with its package and addon references.
// When a client ID is given, the client's contact details are snapshotted
// onto the booking so later client edits do not change issued invoices.
func (s *BookingService) CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error) {
	if input.TaxRate < 0 || input.TaxRate > 100 {
		return nil, apperror.NewUnprocessableError("Tax rate must be between 0 and 100")
	}
	if input.AmountPaid < 0 {
		return nil, apperror.NewUnprocessableError("Amount paid must not be negative")
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, apperror.NewBadRequestError("Unknown booking status")
	}

	booking := &entity.Booking{
		UserID:        input.UserID,
		ClientID:      input.ClientID,
		ClientName:    strings.TrimSpace(input.ClientName),
		ClientContact: input.ClientContact,
		ClientAddress: input.ClientAddress,
		EventDate:     input.EventDate,
		Venue:         input.Venue,
		EventType:     input.EventType,
		Description:   input.Description,
		TaxRate:       input.TaxRate,
		AmountPaid:    int64(math.Round(input.AmountPaid * 100)),
		AmountDue:     int64(math.Round(input.AmountDue * 100)),
		DueDate:       input.DueDate,
		Status:        input.Status,
		PaymentStatus: enum.PaymentStatusPending,
	}
	if booking.Status == "" {
		booking.Status = enum.BookingStatusInquiry
	}

	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		if client.UserID != input.UserID {
			return nil, apperror.ErrForbidden
		}
		if booking.ClientName == "" {
			booking.ClientName = client.Name
		}
		if booking.ClientContact == "" {
			booking.ClientContact = clientContact(client)
		}
		if booking.ClientAddress == "" && client.Address != nil {
			booking.ClientAddress = *client.Address
		}
	}

	if booking.ClientName == "" {
		return nil, apperror.NewBadRequestError("Client name is required")
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if len(input.PackageIDs) > 0 || len(input.AddonIDs) > 0 {
		if err := s.bookingRepo.ReplaceRefs(ctx, booking.ID, input.PackageIDs, input.AddonIDs); err != nil {
			return nil, err
		}
	}

	return s.bookingRepo.GetWithRefs(ctx, booking.ID)
}

// GetBooking retrieves a booking with its references, enforcing ownership
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetWithRefs(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	if booking.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return booking, nil
}

// ListBookings retrieves bookings for a user with filtering and pagination
func (s *BookingService) ListBookings(ctx context.Context, userID uuid.UUID, params *repository.BookingFilterParams) ([]entity.Booking, int64, error) {
	return s.bookingRepo.List(ctx, userID, params)
}

// UpdateBookingInput represents the update booking input
type UpdateBookingInput struct {
	UserID        uuid.UUID
	BookingID     uuid.UUID
	ClientName    *string
	ClientContact *string
	ClientAddress *string
	EventDate     *time.Time
	Venue         *string
	EventType     *string
	Description   *string
	TaxRate       *float64
	AmountPaid    *float64
	AmountDue     *float64
	DueDate       *time.Time
	Status        *enum.BookingStatus
	PackageIDs    *[]uuid.UUID
	AddonIDs      *[]uuid.UUID
}

// UpdateBooking updates a booking. A provided reference list replaces that
// list wholesale in the submitted order; a nil list keeps the existing
// references untouched, like every other nil field.
func (s *BookingService) UpdateBooking(ctx context.Context, input *UpdateBookingInput) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	if booking.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.ClientName != nil {
		if strings.TrimSpace(*input.ClientName) == "" {
			return nil, apperror.NewBadRequestError("Client name is required")
		}
		booking.ClientName = strings.TrimSpace(*input.ClientName)
	}
	if input.ClientContact != nil {
		booking.ClientContact = *input.ClientContact
	}
	if input.ClientAddress != nil {
		booking.ClientAddress = *input.ClientAddress
	}
	if input.EventDate != nil {
		booking.EventDate = *input.EventDate
	}
	if input.Venue != nil {
		booking.Venue = *input.Venue
	}
	if input.EventType != nil {
		booking.EventType = *input.EventType
	}
	if input.Description != nil {
		booking.Description = input.Description
	}
	if input.TaxRate != nil {
		if *input.TaxRate < 0 || *input.TaxRate > 100 {
			return nil, apperror.NewUnprocessableError("Tax rate must be between 0 and 100")
		}
		booking.TaxRate = *input.TaxRate
	}
	if input.AmountPaid != nil {
		if *input.AmountPaid < 0 {
			return nil, apperror.NewUnprocessableError("Amount paid must not be negative")
		}
		booking.AmountPaid = int64(math.Round(*input.AmountPaid * 100))
	}
	if input.AmountDue != nil {
		booking.AmountDue = int64(math.Round(*input.AmountDue * 100))
	}
	if input.DueDate != nil {
		booking.DueDate = input.DueDate
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperror.NewBadRequestError("Unknown booking status")
		}
		booking.Status = *input.Status
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if input.PackageIDs != nil || input.AddonIDs != nil {
		packageIDs := input.PackageIDs
		addonIDs := input.AddonIDs
		if packageIDs == nil || addonIDs == nil {
			current, err := s.bookingRepo.GetWithRefs(ctx, booking.ID)
			if err != nil {
				return nil, err
			}
			if current == nil {
				return nil, apperror.NewNotFoundError("Booking")
			}
			if packageIDs == nil {
				ids := current.PackageIDs()
				packageIDs = &ids
			}
			if addonIDs == nil {
				ids := current.AddonIDs()
				addonIDs = &ids
			}
		}
		if err := s.bookingRepo.ReplaceRefs(ctx, booking.ID, *packageIDs, *addonIDs); err != nil {
			return nil, err
		}
	}

	return s.bookingRepo.GetWithRefs(ctx, booking.ID)
}

// DeleteBooking deletes a booking and its references
func (s *BookingService) DeleteBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return apperror.NewNotFoundError("Booking")
	}
	if booking.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.bookingRepo.Delete(ctx, bookingID)
}

// RecordPaymentInput represents the record payment input
type RecordPaymentInput struct {
	UserID    uuid.UUID
	BookingID uuid.UUID
	Amount    float64
	Method    string
	Note      *string
	PaidAt    *time.Time
}

// RecordPayment records a payment against a booking and updates the
// booking's running totals. The payment status flips to completed once
// the recorded balance reaches zero.
func (s *BookingService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Booking, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewUnprocessableError("Payment amount must be positive")
	}

	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	if booking.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if booking.Status == enum.BookingStatusCancelled {
		return nil, apperror.NewConflictError("Cannot record a payment on a cancelled booking")
	}

	paidAt := time.Now()
	if input.PaidAt != nil {
		paidAt = *input.PaidAt
	}

	amountCents := int64(math.Round(input.Amount * 100))
	payment := &entity.Payment{
		BookingID: booking.ID,
		Amount:    amountCents,
		Method:    input.Method,
		Note:      input.Note,
		PaidAt:    paidAt,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	booking.AmountPaid += amountCents
	booking.AmountDue -= amountCents
	if booking.AmountDue < 0 {
		booking.AmountDue = 0
	}
	if booking.AmountDue == 0 {
		booking.PaymentStatus = enum.PaymentStatusCompleted
	} else {
		booking.PaymentStatus = enum.PaymentStatusConfirmed
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	return s.bookingRepo.GetWithRefs(ctx, booking.ID)
}

// ListPayments returns the payments recorded against a booking
func (s *BookingService) ListPayments(ctx context.Context, userID, bookingID uuid.UUID) ([]entity.Payment, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	if booking.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return s.paymentRepo.ListByBooking(ctx, bookingID)
}

func clientContact(client *entity.Client) string {
	if client.Email != nil && *client.Email != "" {
		return *client.Email
	}
	if client.Phone != nil && *client.Phone != "" {
		return *client.Phone
	}
	return ""
}
