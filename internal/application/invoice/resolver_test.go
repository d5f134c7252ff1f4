package invoice

import (
	"testing"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(packages []entity.ServicePackage, addons []entity.Addon) *Catalog {
	return NewCatalog(packages, addons)
}

func bookingWithRefs(packageIDs, addonIDs []uuid.UUID) *entity.Booking {
	b := &entity.Booking{ID: uuid.New()}
	for i, id := range packageIDs {
		b.PackageRefs = append(b.PackageRefs, entity.BookingPackage{PackageID: id, SortOrder: i})
	}
	for i, id := range addonIDs {
		b.AddonRefs = append(b.AddonRefs, entity.BookingAddon{AddonID: id, SortOrder: i})
	}
	return b
}

func TestResolveEmptyBooking(t *testing.T) {
	catalog := testCatalog(nil, nil)
	lines := Resolve(bookingWithRefs(nil, nil), catalog)
	assert.Empty(t, lines)
}

func TestResolveOrderAndKinds(t *testing.T) {
	pkg := entity.ServicePackage{ID: uuid.New(), Name: "Full Day Wedding", Price: 150000}
	addon := entity.Addon{ID: uuid.New(), Description: "Extra Album", Price: 20000, Quantity: 2}
	catalog := testCatalog([]entity.ServicePackage{pkg}, []entity.Addon{addon})

	lines := Resolve(bookingWithRefs([]uuid.UUID{pkg.ID}, []uuid.UUID{addon.ID}), catalog)
	require.Len(t, lines, 2)

	assert.Equal(t, LinePackage, lines[0].Kind)
	assert.Equal(t, pkg.ID, lines[0].Package.ID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, int64(150000), lines[0].Amount())

	assert.Equal(t, LineAddon, lines[1].Kind)
	assert.Equal(t, addon.ID, lines[1].Addon.ID)
	assert.Equal(t, 2, lines[1].Quantity)
	assert.Equal(t, int64(40000), lines[1].Amount())
}

func TestResolvePreservesDuplicates(t *testing.T) {
	pkg := entity.ServicePackage{ID: uuid.New(), Name: "Drone Coverage", Price: 50000}
	catalog := testCatalog([]entity.ServicePackage{pkg}, nil)

	// A package booked twice yields two lines
	lines := Resolve(bookingWithRefs([]uuid.UUID{pkg.ID, pkg.ID}, nil), catalog)
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0].Package.ID, lines[1].Package.ID)
}

func TestResolvePreservesBookingOrder(t *testing.T) {
	first := entity.ServicePackage{ID: uuid.New(), Name: "Photo", Price: 10000}
	second := entity.ServicePackage{ID: uuid.New(), Name: "Video", Price: 20000}
	catalog := testCatalog([]entity.ServicePackage{second, first}, nil)

	lines := Resolve(bookingWithRefs([]uuid.UUID{first.ID, second.ID}, nil), catalog)
	require.Len(t, lines, 2)
	assert.Equal(t, first.ID, lines[0].OriginalID)
	assert.Equal(t, second.ID, lines[1].OriginalID)
}

func TestResolveUnmatchedIDYieldsUnresolvedLine(t *testing.T) {
	missing := uuid.New()
	catalog := testCatalog(nil, nil)

	lines := Resolve(bookingWithRefs([]uuid.UUID{missing}, nil), catalog)
	require.Len(t, lines, 1)
	assert.Equal(t, LineUnresolved, lines[0].Kind)
	assert.Equal(t, missing, lines[0].OriginalID)
	assert.Equal(t, LinePackage, lines[0].Source)
	assert.Zero(t, lines[0].Amount())
}

func TestResolveUnmatchedAddonKeepsPosition(t *testing.T) {
	addon := entity.Addon{ID: uuid.New(), Description: "Prints", Price: 5000, Quantity: 1}
	missing := uuid.New()
	catalog := testCatalog(nil, []entity.Addon{addon})

	lines := Resolve(bookingWithRefs(nil, []uuid.UUID{addon.ID, missing}), catalog)
	require.Len(t, lines, 2)
	assert.Equal(t, LineAddon, lines[0].Kind)
	assert.Equal(t, LineUnresolved, lines[1].Kind)
	assert.Equal(t, LineAddon, lines[1].Source)
}
