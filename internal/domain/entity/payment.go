package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment records a single payment made against a booking
type Payment struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID      `gorm:"type:uuid;not null;index" json:"booking_id"`
	Amount    int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Method    string         `gorm:"size:50" json:"method"`
	Note      *string        `gorm:"type:text" json:"note,omitempty"`
	PaidAt    time.Time      `gorm:"not null" json:"paid_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
