package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/framelight/studio-api/internal/domain/repository"
	"github.com/framelight/studio-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingRepo struct {
	booking     *entity.Booking
	err         error
	lastCreated *entity.Booking

	refsReplaced     bool
	replacedPackages []uuid.UUID
	replacedAddons   []uuid.UUID
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	s.lastCreated = booking
	return nil
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingRepo) GetWithRefs(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingRepo) Update(ctx context.Context, booking *entity.Booking) error { return nil }

func (s *stubBookingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubBookingRepo) List(ctx context.Context, userID uuid.UUID, params *repository.BookingFilterParams) ([]entity.Booking, int64, error) {
	return nil, 0, nil
}

func (s *stubBookingRepo) ReplaceRefs(ctx context.Context, bookingID uuid.UUID, packageIDs, addonIDs []uuid.UUID) error {
	s.refsReplaced = true
	s.replacedPackages = packageIDs
	s.replacedAddons = addonIDs
	return nil
}

func (s *stubBookingRepo) Upcoming(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) CountByStatus(ctx context.Context, userID uuid.UUID) (map[enum.BookingStatus]int64, error) {
	return nil, nil
}

func (s *stubBookingRepo) Totals(ctx context.Context, userID uuid.UUID) (*repository.BookingTotals, error) {
	return &repository.BookingTotals{}, nil
}

type stubPackageRepo struct {
	packages []entity.ServicePackage
	err      error
}

func (s *stubPackageRepo) Create(ctx context.Context, pkg *entity.ServicePackage) error { return nil }

func (s *stubPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServicePackage, error) {
	return nil, nil
}

func (s *stubPackageRepo) Update(ctx context.Context, pkg *entity.ServicePackage) error { return nil }

func (s *stubPackageRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubPackageRepo) ListAll(ctx context.Context) ([]entity.ServicePackage, error) {
	return s.packages, s.err
}

type stubAddonRepo struct {
	addons []entity.Addon
	err    error
}

func (s *stubAddonRepo) Create(ctx context.Context, addon *entity.Addon) error { return nil }

func (s *stubAddonRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error) {
	return nil, nil
}

func (s *stubAddonRepo) Update(ctx context.Context, addon *entity.Addon) error { return nil }

func (s *stubAddonRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubAddonRepo) ListAll(ctx context.Context) ([]entity.Addon, error) {
	return s.addons, s.err
}

func invoiceFixture() (uuid.UUID, *entity.Booking, []entity.ServicePackage, []entity.Addon) {
	userID := uuid.New()
	pkg := entity.ServicePackage{
		ID:    uuid.New(),
		Name:  "Full Day Wedding",
		Price: 150000,
	}
	addon := entity.Addon{
		ID:          uuid.New(),
		Description: "Extra Album",
		Price:       20000,
		Quantity:    2,
	}
	booking := &entity.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		ClientName: "Ada Wong",
		EventDate:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		TaxRate:    7.5,
		AmountPaid: 50000,
		AmountDue:  154250,
		PackageRefs: []entity.BookingPackage{
			{PackageID: pkg.ID, SortOrder: 0},
		},
		AddonRefs: []entity.BookingAddon{
			{AddonID: addon.ID, SortOrder: 0},
		},
	}
	return userID, booking, []entity.ServicePackage{pkg}, []entity.Addon{addon}
}

func TestBuildInvoice_Success(t *testing.T) {
	userID, booking, packages, addons := invoiceFixture()
	svc := NewInvoiceService(
		&stubBookingRepo{booking: booking},
		&stubPackageRepo{packages: packages},
		&stubAddonRepo{addons: addons},
	)

	view, err := svc.BuildInvoice(context.Background(), userID, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Len(t, view.Invoice.Lines, 2)
	assert.Equal(t, int64(190000), view.Invoice.Summary.Subtotal)
	assert.Equal(t, int64(14250), view.Invoice.Summary.TaxAmount)
	assert.Equal(t, int64(204250), view.Invoice.Summary.Total)
	assert.Equal(t, int64(154250), view.Invoice.Summary.BalanceDue)
	assert.Equal(t, int64(154250), view.Invoice.Summary.RecordedBalanceDue)
}

func TestBuildInvoice_BookingNotFound(t *testing.T) {
	userID, _, packages, addons := invoiceFixture()
	svc := NewInvoiceService(
		&stubBookingRepo{},
		&stubPackageRepo{packages: packages},
		&stubAddonRepo{addons: addons},
	)

	_, err := svc.BuildInvoice(context.Background(), userID, uuid.New())
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestBuildInvoice_WrongOwner(t *testing.T) {
	_, booking, packages, addons := invoiceFixture()
	svc := NewInvoiceService(
		&stubBookingRepo{booking: booking},
		&stubPackageRepo{packages: packages},
		&stubAddonRepo{addons: addons},
	)

	_, err := svc.BuildInvoice(context.Background(), uuid.New(), booking.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestBuildInvoice_FetchFailureFailsWholeView(t *testing.T) {
	userID, booking, packages, _ := invoiceFixture()
	boom := errors.New("connection reset")

	svc := NewInvoiceService(
		&stubBookingRepo{booking: booking},
		&stubPackageRepo{packages: packages},
		&stubAddonRepo{err: boom},
	)

	view, err := svc.BuildInvoice(context.Background(), userID, booking.ID)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, boom)
}

func TestBuildInvoice_MissingReferenceIsUnprocessable(t *testing.T) {
	userID, booking, packages, _ := invoiceFixture()

	// Addon catalog loads fine but does not contain the referenced addon.
	svc := NewInvoiceService(
		&stubBookingRepo{booking: booking},
		&stubPackageRepo{packages: packages},
		&stubAddonRepo{addons: []entity.Addon{}},
	)

	_, err := svc.BuildInvoice(context.Background(), userID, booking.ID)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Contains(t, appErr.Message, "addon")
}

func TestBuildInvoice_InvalidTaxRateIsValidationError(t *testing.T) {
	userID, booking, packages, addons := invoiceFixture()
	booking.TaxRate = 120

	svc := NewInvoiceService(
		&stubBookingRepo{booking: booking},
		&stubPackageRepo{packages: packages},
		&stubAddonRepo{addons: addons},
	)

	_, err := svc.BuildInvoice(context.Background(), userID, booking.ID)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "tax_rate", appErr.Errors[0].Field)
}

