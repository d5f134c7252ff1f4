package invoice

import (
	"errors"
	"testing"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	pkg := entity.ServicePackage{ID: uuid.New(), Name: "Elopement", Price: 80000}
	addon := entity.Addon{ID: uuid.New(), Description: "Second Shooter", Price: 30000, Quantity: 1}
	catalog := NewCatalog([]entity.ServicePackage{pkg}, []entity.Addon{addon})

	got, ok := catalog.PackageByID(pkg.ID)
	require.True(t, ok)
	assert.Equal(t, pkg.Name, got.Name)

	gotAddon, ok := catalog.AddonByID(addon.ID)
	require.True(t, ok)
	assert.Equal(t, addon.Description, gotAddon.Description)

	_, ok = catalog.PackageByID(uuid.New())
	assert.False(t, ok)
	_, ok = catalog.AddonByID(uuid.New())
	assert.False(t, ok)

	assert.Equal(t, 1, catalog.PackageCount())
	assert.Equal(t, 1, catalog.AddonCount())
}

func TestComputeInvoice(t *testing.T) {
	pkg := entity.ServicePackage{ID: uuid.New(), Name: "Full Day Wedding", Price: 150000}
	addon := entity.Addon{ID: uuid.New(), Description: "Extra Album", Price: 20000, Quantity: 2}
	catalog := NewCatalog([]entity.ServicePackage{pkg}, []entity.Addon{addon})

	booking := bookingWithRefs([]uuid.UUID{pkg.ID}, []uuid.UUID{addon.ID})
	booking.TaxRate = 7.5
	booking.AmountPaid = 50000
	booking.AmountDue = 160000

	inv, err := ComputeInvoice(booking, catalog)
	require.NoError(t, err)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, int64(190000), inv.Summary.Subtotal)
	assert.Equal(t, int64(14250), inv.Summary.TaxAmount)
	assert.Equal(t, int64(204250), inv.Summary.Total)
	assert.Equal(t, int64(154250), inv.Summary.BalanceDue)
	assert.Equal(t, int64(160000), inv.Summary.RecordedBalanceDue)
}

func TestComputeInvoiceMissingReference(t *testing.T) {
	catalog := NewCatalog(nil, nil)
	missing := uuid.New()
	booking := bookingWithRefs(nil, []uuid.UUID{missing})

	inv, err := ComputeInvoice(booking, catalog)
	assert.Nil(t, inv)

	var refErr *MissingReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, missing, refErr.ID)
	assert.Equal(t, "addon", refErr.Kind)
}
