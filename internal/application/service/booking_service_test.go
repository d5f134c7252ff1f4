package service

import (
	"context"
	"testing"
	"time"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/framelight/studio-api/pkg/apperror"
	"github.com/framelight/studio-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClientRepo struct {
	client *entity.Client
}

func (s *stubClientRepo) Create(ctx context.Context, client *entity.Client) error { return nil }

func (s *stubClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	return s.client, nil
}

func (s *stubClientRepo) Update(ctx context.Context, client *entity.Client) error { return nil }

func (s *stubClientRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubClientRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	return nil, 0, nil
}

type stubPaymentRepo struct {
	created []*entity.Payment
}

func (s *stubPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	s.created = append(s.created, payment)
	return nil
}

func (s *stubPaymentRepo) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]entity.Payment, error) {
	return nil, nil
}

func TestRecordPayment_UpdatesRunningTotals(t *testing.T) {
	userID := uuid.New()
	booking := &entity.Booking{
		ID:            uuid.New(),
		UserID:        userID,
		ClientName:    "Ada Wong",
		Status:        enum.BookingStatusScheduled,
		PaymentStatus: enum.PaymentStatusPending,
		AmountPaid:    50000,
		AmountDue:     154250,
	}
	payments := &stubPaymentRepo{}
	svc := NewBookingService(&stubBookingRepo{booking: booking}, &stubClientRepo{}, payments)

	updated, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    userID,
		BookingID: booking.ID,
		Amount:    1000.00,
		Method:    "card",
	})
	require.NoError(t, err)

	require.Len(t, payments.created, 1)
	assert.Equal(t, int64(100000), payments.created[0].Amount)

	assert.Equal(t, int64(150000), updated.AmountPaid)
	assert.Equal(t, int64(54250), updated.AmountDue)
	assert.Equal(t, enum.PaymentStatusConfirmed, updated.PaymentStatus)
}

func TestRecordPayment_CompletesWhenBalanceReachesZero(t *testing.T) {
	userID := uuid.New()
	booking := &entity.Booking{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        enum.BookingStatusScheduled,
		PaymentStatus: enum.PaymentStatusConfirmed,
		AmountPaid:    150000,
		AmountDue:     54250,
	}
	svc := NewBookingService(&stubBookingRepo{booking: booking}, &stubClientRepo{}, &stubPaymentRepo{})

	updated, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    userID,
		BookingID: booking.ID,
		Amount:    542.50,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), updated.AmountDue)
	assert.Equal(t, enum.PaymentStatusCompleted, updated.PaymentStatus)
}

func TestRecordPayment_RoundsFractionalCents(t *testing.T) {
	userID := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		Status:     enum.BookingStatusScheduled,
		AmountPaid: 0,
		AmountDue:  154250,
	}
	payments := &stubPaymentRepo{}
	svc := NewBookingService(&stubBookingRepo{booking: booking}, &stubClientRepo{}, payments)

	updated, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    userID,
		BookingID: booking.ID,
		Amount:    19.99,
	})
	require.NoError(t, err)

	require.Len(t, payments.created, 1)
	assert.Equal(t, int64(1999), payments.created[0].Amount)
	assert.Equal(t, int64(1999), updated.AmountPaid)
}

func TestRecordPayment_RejectsCancelledBooking(t *testing.T) {
	userID := uuid.New()
	booking := &entity.Booking{
		ID:     uuid.New(),
		UserID: userID,
		Status: enum.BookingStatusCancelled,
	}
	svc := NewBookingService(&stubBookingRepo{booking: booking}, &stubClientRepo{}, &stubPaymentRepo{})

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    userID,
		BookingID: booking.ID,
		Amount:    100,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewBookingService(&stubBookingRepo{}, &stubClientRepo{}, &stubPaymentRepo{})

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    uuid.New(),
		BookingID: uuid.New(),
		Amount:    0,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestUpdateBooking_PackagesOnlyKeepsAddonRefs(t *testing.T) {
	userID := uuid.New()
	existingAddon := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		ClientName: "Ada Wong",
		PackageRefs: []entity.BookingPackage{
			{PackageID: uuid.New(), SortOrder: 0},
		},
		AddonRefs: []entity.BookingAddon{
			{AddonID: existingAddon, SortOrder: 0},
		},
	}
	bookingRepo := &stubBookingRepo{booking: booking}
	svc := NewBookingService(bookingRepo, &stubClientRepo{}, &stubPaymentRepo{})

	newPackage := uuid.New()
	_, err := svc.UpdateBooking(context.Background(), &UpdateBookingInput{
		UserID:     userID,
		BookingID:  booking.ID,
		PackageIDs: &[]uuid.UUID{newPackage},
	})
	require.NoError(t, err)

	require.True(t, bookingRepo.refsReplaced)
	assert.Equal(t, []uuid.UUID{newPackage}, bookingRepo.replacedPackages)
	assert.Equal(t, []uuid.UUID{existingAddon}, bookingRepo.replacedAddons)
}

func TestUpdateBooking_AddonsOnlyKeepsPackageRefs(t *testing.T) {
	userID := uuid.New()
	existingPackage := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		ClientName: "Ada Wong",
		PackageRefs: []entity.BookingPackage{
			{PackageID: existingPackage, SortOrder: 0},
		},
	}
	bookingRepo := &stubBookingRepo{booking: booking}
	svc := NewBookingService(bookingRepo, &stubClientRepo{}, &stubPaymentRepo{})

	_, err := svc.UpdateBooking(context.Background(), &UpdateBookingInput{
		UserID:    userID,
		BookingID: booking.ID,
		AddonIDs:  &[]uuid.UUID{},
	})
	require.NoError(t, err)

	require.True(t, bookingRepo.refsReplaced)
	assert.Equal(t, []uuid.UUID{existingPackage}, bookingRepo.replacedPackages)
	assert.Empty(t, bookingRepo.replacedAddons)
}

func TestUpdateBooking_NilListsLeaveRefsUntouched(t *testing.T) {
	userID := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		ClientName: "Ada Wong",
		AddonRefs: []entity.BookingAddon{
			{AddonID: uuid.New(), SortOrder: 0},
		},
	}
	bookingRepo := &stubBookingRepo{booking: booking}
	svc := NewBookingService(bookingRepo, &stubClientRepo{}, &stubPaymentRepo{})

	venue := "Raccoon City Hall"
	_, err := svc.UpdateBooking(context.Background(), &UpdateBookingInput{
		UserID:    userID,
		BookingID: booking.ID,
		Venue:     &venue,
	})
	require.NoError(t, err)

	assert.False(t, bookingRepo.refsReplaced)
}

func TestCreateBooking_SnapshotsClientDetails(t *testing.T) {
	userID := uuid.New()
	email := "ada@example.com"
	address := "12 Raccoon St"
	client := &entity.Client{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    "Ada Wong",
		Email:   &email,
		Address: &address,
	}

	bookingRepo := &stubBookingRepo{}
	svc := NewBookingService(bookingRepo, &stubClientRepo{client: client}, &stubPaymentRepo{})

	_, err := svc.CreateBooking(context.Background(), &CreateBookingInput{
		UserID:    userID,
		ClientID:  &client.ID,
		EventDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventType: "wedding",
		TaxRate:   7.5,
	})
	require.NoError(t, err)

	require.NotNil(t, bookingRepo.lastCreated)
	assert.Equal(t, "Ada Wong", bookingRepo.lastCreated.ClientName)
	assert.Equal(t, email, bookingRepo.lastCreated.ClientContact)
	assert.Equal(t, address, bookingRepo.lastCreated.ClientAddress)
	assert.Equal(t, enum.BookingStatusInquiry, bookingRepo.lastCreated.Status)
}

func TestCreateBooking_RejectsForeignClient(t *testing.T) {
	client := &entity.Client{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "Someone Else's Client",
	}
	svc := NewBookingService(&stubBookingRepo{}, &stubClientRepo{client: client}, &stubPaymentRepo{})

	_, err := svc.CreateBooking(context.Background(), &CreateBookingInput{
		UserID:    uuid.New(),
		ClientID:  &client.ID,
		EventDate: time.Now(),
		EventType: "portrait",
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestCreateBooking_RejectsInvalidTaxRate(t *testing.T) {
	svc := NewBookingService(&stubBookingRepo{}, &stubClientRepo{}, &stubPaymentRepo{})

	_, err := svc.CreateBooking(context.Background(), &CreateBookingInput{
		UserID:     uuid.New(),
		ClientName: "Ada Wong",
		EventDate:  time.Now(),
		EventType:  "wedding",
		TaxRate:    101,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}
