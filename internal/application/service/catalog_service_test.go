package service

import (
	"context"
	"testing"

	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/framelight/studio-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePackage_RoundsFractionalCents(t *testing.T) {
	svc := NewCatalogService(&stubPackageRepo{}, &stubAddonRepo{})

	pkg, err := svc.CreatePackage(context.Background(), &CreatePackageInput{
		Name:     "Mini Session",
		Price:    19.99,
		Category: enum.PackageCategoryPhoto,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1999), pkg.Price)
}

func TestCreateAddon_RoundsFractionalCents(t *testing.T) {
	svc := NewCatalogService(&stubPackageRepo{}, &stubAddonRepo{})

	addon, err := svc.CreateAddon(context.Background(), &CreateAddonInput{
		Description: "Print Set",
		Price:       104.95,
		Quantity:    1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10495), addon.Price)
}

func TestCreatePackage_RejectsNegativePrice(t *testing.T) {
	svc := NewCatalogService(&stubPackageRepo{}, &stubAddonRepo{})

	_, err := svc.CreatePackage(context.Background(), &CreatePackageInput{
		Name:     "Mini Session",
		Price:    -1,
		Category: enum.PackageCategoryPhoto,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
