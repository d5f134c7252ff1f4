package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServicePackage represents a fixed-price bundle of deliverable services
type ServicePackage struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name         string               `gorm:"size:255;not null" json:"name"`
	Description  string               `gorm:"type:text" json:"description"`
	Price        int64                `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Deliverables string               `gorm:"type:text" json:"deliverables"`
	IsPopular    bool                 `gorm:"default:false" json:"is_popular"`
	Category     enum.PackageCategory `gorm:"size:20;default:'photo'" json:"category"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	DeletedAt    gorm.DeletedAt       `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p ServicePackage) MarshalJSON() ([]byte, error) {
	type Alias ServicePackage
	return json.Marshal(&struct {
		Alias
		Price            float64  `json:"price"`
		DeliverableItems []string `json:"deliverable_items"`
	}{
		Alias:            Alias(p),
		Price:            float64(p.Price) / 100,
		DeliverableItems: p.DeliverableList(),
	})
}

// DeliverableList parses the comma-separated deliverables text into a list
// for display. Empty segments are dropped.
func (p *ServicePackage) DeliverableList() []string {
	items := make([]string, 0)
	for _, part := range strings.Split(p.Deliverables, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// BeforeCreate generates a UUID before creating a new package
func (p *ServicePackage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ServicePackage model
func (ServicePackage) TableName() string {
	return "service_packages"
}
