package entity

import (
	"encoding/json"
	"time"

	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking represents a scheduled client engagement with its selected
// packages, add-ons and payment terms. Client contact details are
// snapshotted at creation time so invoices stay stable when the client
// record changes later.
type Booking struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID      *uuid.UUID         `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ClientName    string             `gorm:"size:255;not null" json:"client_name"`
	ClientContact string             `gorm:"size:255" json:"client_contact"`
	ClientAddress string             `gorm:"type:text" json:"client_address"`
	EventDate     time.Time          `gorm:"type:date;not null" json:"event_date"`
	Venue         string             `gorm:"size:255" json:"venue"`
	EventType     string             `gorm:"size:100;not null" json:"event_type"`
	Description   *string            `gorm:"type:text" json:"description,omitempty"`
	TaxRate       float64            `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	AmountPaid    int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	AmountDue     int64              `gorm:"default:0" json:"-"` // Externally recorded balance, in cents
	DueDate       *time.Time         `gorm:"type:date" json:"due_date,omitempty"`
	Status        enum.BookingStatus `gorm:"size:20;default:'inquiry'" json:"status"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;default:'pending'" json:"payment_status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User        User             `gorm:"foreignKey:UserID" json:"-"`
	Client      *Client          `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	PackageRefs []BookingPackage `gorm:"foreignKey:BookingID" json:"package_refs,omitempty"`
	AddonRefs   []BookingAddon   `gorm:"foreignKey:BookingID" json:"addon_refs,omitempty"`
	Payments    []Payment        `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Booking) MarshalJSON() ([]byte, error) {
	type Alias Booking
	return json.Marshal(&struct {
		Alias
		AmountPaid float64 `json:"amount_paid"`
		AmountDue  float64 `json:"amount_due"`
	}{
		Alias:      Alias(b),
		AmountPaid: float64(b.AmountPaid) / 100,
		AmountDue:  float64(b.AmountDue) / 100,
	})
}

// PackageIDs returns the referenced package IDs in booking order.
// Duplicates are preserved; a package booked twice appears twice.
func (b *Booking) PackageIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(b.PackageRefs))
	for i, ref := range b.PackageRefs {
		ids[i] = ref.PackageID
	}
	return ids
}

// AddonIDs returns the referenced addon IDs in booking order.
func (b *Booking) AddonIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(b.AddonRefs))
	for i, ref := range b.AddonRefs {
		ids[i] = ref.AddonID
	}
	return ids
}

// BeforeCreate generates a UUID before creating a new booking
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// BookingPackage is an ordered reference from a booking to a service package.
// SortOrder preserves the order the package was added to the booking.
type BookingPackage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	PackageID uuid.UUID `gorm:"type:uuid;not null;index" json:"package_id"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
}

// BeforeCreate generates a UUID before creating a new booking package ref
func (bp *BookingPackage) BeforeCreate(tx *gorm.DB) error {
	if bp.ID == uuid.Nil {
		bp.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BookingPackage model
func (BookingPackage) TableName() string {
	return "booking_packages"
}

// BookingAddon is an ordered reference from a booking to an addon.
type BookingAddon struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	AddonID   uuid.UUID `gorm:"type:uuid;not null;index" json:"addon_id"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
}

// BeforeCreate generates a UUID before creating a new booking addon ref
func (ba *BookingAddon) BeforeCreate(tx *gorm.DB) error {
	if ba.ID == uuid.Nil {
		ba.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BookingAddon model
func (BookingAddon) TableName() string {
	return "booking_addons"
}
