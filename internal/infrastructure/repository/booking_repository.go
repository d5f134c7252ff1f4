package repository

import (
	"context"
	"errors"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/enum"
	domainRepo "github.com/framelight/studio-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) GetWithRefs(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Preload("PackageRefs", func(db *gorm.DB) *gorm.DB {
			return db.Order("booking_packages.sort_order ASC")
		}).
		Preload("AddonRefs", func(db *gorm.DB) *gorm.DB {
			return db.Order("booking_addons.sort_order ASC")
		}).
		Preload("Payments").
		Preload("Client").
		First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.BookingPackage{}, "booking_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.BookingAddon{}, "booking_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Booking{}, "id = ?", id).Error
	})
}

func (r *bookingRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.BookingFilterParams) ([]entity.Booking, int64, error) {
	var bookings []entity.Booking
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Booking{}).Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("client_name ILIKE ? OR venue ILIKE ? OR event_type ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}

	if params.From != nil {
		query = query.Where("event_date >= ?", *params.From)
	}

	if params.To != nil {
		query = query.Where("event_date <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Client").
		Order("event_date ASC").
		Find(&bookings).Error

	return bookings, total, err
}

// ReplaceRefs rewrites a booking's reference rows inside one transaction so
// a partially applied edit never survives.
func (r *bookingRepository) ReplaceRefs(ctx context.Context, bookingID uuid.UUID, packageIDs, addonIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.BookingPackage{}, "booking_id = ?", bookingID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.BookingAddon{}, "booking_id = ?", bookingID).Error; err != nil {
			return err
		}

		for i, pkgID := range packageIDs {
			ref := entity.BookingPackage{BookingID: bookingID, PackageID: pkgID, SortOrder: i}
			if err := tx.Create(&ref).Error; err != nil {
				return err
			}
		}
		for i, addonID := range addonIDs {
			ref := entity.BookingAddon{BookingID: bookingID, AddonID: addonID, SortOrder: i}
			if err := tx.Create(&ref).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *bookingRepository) Upcoming(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_date >= CURRENT_DATE AND status <> ?", userID, enum.BookingStatusCancelled).
		Order("event_date ASC").
		Limit(limit).
		Preload("Client").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[enum.BookingStatus]int64, error) {
	type statusCount struct {
		Status enum.BookingStatus
		Count  int64
	}
	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.BookingStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *bookingRepository) Totals(ctx context.Context, userID uuid.UUID) (*domainRepo.BookingTotals, error) {
	var totals domainRepo.BookingTotals
	err := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Select("COUNT(*) as booking_count, COALESCE(SUM(amount_paid), 0) as collected_cents, COALESCE(SUM(amount_due), 0) as due_cents").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("paid_at ASC").
		Find(&payments).Error
	return payments, err
}
