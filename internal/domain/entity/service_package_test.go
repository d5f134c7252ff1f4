package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicePackage_DeliverableList(t *testing.T) {
	tests := []struct {
		name         string
		deliverables string
		want         []string
	}{
		{
			name:         "comma separated",
			deliverables: "8 hours coverage, 400 edited photos, online gallery",
			want:         []string{"8 hours coverage", "400 edited photos", "online gallery"},
		},
		{
			name:         "empty string",
			deliverables: "",
			want:         []string{},
		},
		{
			name:         "whitespace and empty segments dropped",
			deliverables: " drone footage ,, , 4k delivery ",
			want:         []string{"drone footage", "4k delivery"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &ServicePackage{Deliverables: tt.deliverables}
			assert.Equal(t, tt.want, pkg.DeliverableList())
		})
	}
}

func TestServicePackage_MarshalJSON_ConvertsCents(t *testing.T) {
	pkg := ServicePackage{
		Name:         "Full Day Wedding",
		Price:        150000,
		Deliverables: "8 hours, gallery",
	}

	data, err := json.Marshal(pkg)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 1500.0, decoded["price"])
	assert.Equal(t, []interface{}{"8 hours", "gallery"}, decoded["deliverable_items"])
}

func TestAddon_Amount(t *testing.T) {
	addon := &Addon{Price: 20000, Quantity: 2}
	assert.Equal(t, int64(40000), addon.Amount())

	single := &Addon{Price: 7500, Quantity: 1}
	assert.Equal(t, int64(7500), single.Amount())
}

func TestBooking_RefIDsPreserveOrderAndDuplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	booking := &Booking{
		PackageRefs: []BookingPackage{
			{PackageID: b, SortOrder: 0},
			{PackageID: a, SortOrder: 1},
			{PackageID: b, SortOrder: 2},
		},
		AddonRefs: []BookingAddon{
			{AddonID: a, SortOrder: 0},
			{AddonID: a, SortOrder: 1},
		},
	}

	assert.Equal(t, []uuid.UUID{b, a, b}, booking.PackageIDs())
	assert.Equal(t, []uuid.UUID{a, a}, booking.AddonIDs())
}
