package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Addon represents a quantity-priced supplementary service
type Addon struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Price       int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Quantity    int            `gorm:"not null;default:1" json:"quantity"`
	IsTaxable   bool           `gorm:"default:true" json:"is_taxable"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (a Addon) MarshalJSON() ([]byte, error) {
	type Alias Addon
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(a),
		Price: float64(a.Price) / 100,
	})
}

// Amount returns the line amount for this addon: price multiplied by quantity.
func (a *Addon) Amount() int64 {
	return a.Price * int64(a.Quantity)
}

// BeforeCreate generates a UUID before creating a new addon
func (a *Addon) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Addon model
func (Addon) TableName() string {
	return "addons"
}
