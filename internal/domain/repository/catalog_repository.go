package repository

import (
	"context"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/google/uuid"
)

// PackageRepository defines the interface for service package data operations
type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.ServicePackage) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ServicePackage, error)
	Update(ctx context.Context, pkg *entity.ServicePackage) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListAll returns the complete package catalog. Invoice resolution
	// requires the full sequence, not a page.
	ListAll(ctx context.Context) ([]entity.ServicePackage, error)
}

// AddonRepository defines the interface for addon data operations
type AddonRepository interface {
	Create(ctx context.Context, addon *entity.Addon) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error)
	Update(ctx context.Context, addon *entity.Addon) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListAll returns the complete addon catalog
	ListAll(ctx context.Context) ([]entity.Addon, error)
}
