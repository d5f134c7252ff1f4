package service

import (
	"context"
	"math"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/framelight/studio-api/internal/domain/repository"
	"github.com/framelight/studio-api/pkg/apperror"
	"github.com/google/uuid"
)

// CatalogService manages the package and addon reference data
type CatalogService struct {
	packageRepo repository.PackageRepository
	addonRepo   repository.AddonRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(packageRepo repository.PackageRepository, addonRepo repository.AddonRepository) *CatalogService {
	return &CatalogService{
		packageRepo: packageRepo,
		addonRepo:   addonRepo,
	}
}

// CreatePackageInput represents the create package input
type CreatePackageInput struct {
	Name         string
	Description  string
	Price        float64
	Deliverables string
	IsPopular    bool
	Category     enum.PackageCategory
}

// CreatePackage creates a new service package
func (s *CatalogService) CreatePackage(ctx context.Context, input *CreatePackageInput) (*entity.ServicePackage, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}
	if !input.Category.Valid() {
		return nil, apperror.NewBadRequestError("Unknown package category")
	}

	pkg := &entity.ServicePackage{
		Name:         input.Name,
		Description:  input.Description,
		Price:        int64(math.Round(input.Price * 100)),
		Deliverables: input.Deliverables,
		IsPopular:    input.IsPopular,
		Category:     input.Category,
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// GetPackage retrieves a package by ID
func (s *CatalogService) GetPackage(ctx context.Context, id uuid.UUID) (*entity.ServicePackage, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}
	return pkg, nil
}

// ListPackages returns the full package catalog
func (s *CatalogService) ListPackages(ctx context.Context) ([]entity.ServicePackage, error) {
	return s.packageRepo.ListAll(ctx)
}

// UpdatePackageInput represents the update package input
type UpdatePackageInput struct {
	ID           uuid.UUID
	Name         *string
	Description  *string
	Price        *float64
	Deliverables *string
	IsPopular    *bool
	Category     *enum.PackageCategory
}

// UpdatePackage updates a service package
func (s *CatalogService) UpdatePackage(ctx context.Context, input *UpdatePackageInput) (*entity.ServicePackage, error) {
	pkg, err := s.packageRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}

	if input.Name != nil {
		pkg.Name = *input.Name
	}
	if input.Description != nil {
		pkg.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price must not be negative")
		}
		pkg.Price = int64(math.Round(*input.Price * 100))
	}
	if input.Deliverables != nil {
		pkg.Deliverables = *input.Deliverables
	}
	if input.IsPopular != nil {
		pkg.IsPopular = *input.IsPopular
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, apperror.NewBadRequestError("Unknown package category")
		}
		pkg.Category = *input.Category
	}

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// DeletePackage deletes a service package
func (s *CatalogService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pkg == nil {
		return apperror.NewNotFoundError("Package")
	}
	return s.packageRepo.Delete(ctx, id)
}

// CreateAddonInput represents the create addon input
type CreateAddonInput struct {
	Description string
	Price       float64
	Quantity    int
	IsTaxable   bool
}

// CreateAddon creates a new addon
func (s *CatalogService) CreateAddon(ctx context.Context, input *CreateAddonInput) (*entity.Addon, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}
	if input.Quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	addon := &entity.Addon{
		Description: input.Description,
		Price:       int64(math.Round(input.Price * 100)),
		Quantity:    input.Quantity,
		IsTaxable:   input.IsTaxable,
	}

	if err := s.addonRepo.Create(ctx, addon); err != nil {
		return nil, err
	}

	return addon, nil
}

// GetAddon retrieves an addon by ID
func (s *CatalogService) GetAddon(ctx context.Context, id uuid.UUID) (*entity.Addon, error) {
	addon, err := s.addonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if addon == nil {
		return nil, apperror.NewNotFoundError("Addon")
	}
	return addon, nil
}

// ListAddons returns the full addon catalog
func (s *CatalogService) ListAddons(ctx context.Context) ([]entity.Addon, error) {
	return s.addonRepo.ListAll(ctx)
}

// UpdateAddonInput represents the update addon input
type UpdateAddonInput struct {
	ID          uuid.UUID
	Description *string
	Price       *float64
	Quantity    *int
	IsTaxable   *bool
}

// UpdateAddon updates an addon
func (s *CatalogService) UpdateAddon(ctx context.Context, input *UpdateAddonInput) (*entity.Addon, error) {
	addon, err := s.addonRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if addon == nil {
		return nil, apperror.NewNotFoundError("Addon")
	}

	if input.Description != nil {
		addon.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price must not be negative")
		}
		addon.Price = int64(math.Round(*input.Price * 100))
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Quantity must be at least 1")
		}
		addon.Quantity = *input.Quantity
	}
	if input.IsTaxable != nil {
		addon.IsTaxable = *input.IsTaxable
	}

	if err := s.addonRepo.Update(ctx, addon); err != nil {
		return nil, err
	}

	return addon, nil
}

// DeleteAddon deletes an addon
func (s *CatalogService) DeleteAddon(ctx context.Context, id uuid.UUID) error {
	addon, err := s.addonRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if addon == nil {
		return apperror.NewNotFoundError("Addon")
	}
	return s.addonRepo.Delete(ctx, id)
}
