package repository

import (
	"context"
	"errors"

	"github.com/framelight/studio-api/internal/domain/entity"
	domainRepo "github.com/framelight/studio-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new service package repository
func NewPackageRepository(db *gorm.DB) domainRepo.PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.ServicePackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServicePackage, error) {
	var pkg entity.ServicePackage
	err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pkg, err
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.ServicePackage) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ServicePackage{}, "id = ?", id).Error
}

func (r *packageRepository) ListAll(ctx context.Context) ([]entity.ServicePackage, error) {
	var packages []entity.ServicePackage
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&packages).Error
	return packages, err
}

type addonRepository struct {
	db *gorm.DB
}

// NewAddonRepository creates a new addon repository
func NewAddonRepository(db *gorm.DB) domainRepo.AddonRepository {
	return &addonRepository{db: db}
}

func (r *addonRepository) Create(ctx context.Context, addon *entity.Addon) error {
	return r.db.WithContext(ctx).Create(addon).Error
}

func (r *addonRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error) {
	var addon entity.Addon
	err := r.db.WithContext(ctx).First(&addon, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &addon, err
}

func (r *addonRepository) Update(ctx context.Context, addon *entity.Addon) error {
	return r.db.WithContext(ctx).Save(addon).Error
}

func (r *addonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Addon{}, "id = ?", id).Error
}

func (r *addonRepository) ListAll(ctx context.Context) ([]entity.Addon, error) {
	var addons []entity.Addon
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&addons).Error
	return addons, err
}
