package invoice

import (
	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/google/uuid"
)

// LineKind tags the variant of a resolved line item.
type LineKind string

const (
	LinePackage    LineKind = "package"
	LineAddon      LineKind = "addon"
	LineUnresolved LineKind = "unresolved"
)

// LineItem is one resolved entry of an invoice: a package, an addon with its
// quantity, or an unresolved reference carrying the original ID. Exactly one
// of Package/Addon is set depending on Kind.
type LineItem struct {
	Kind     LineKind
	Package  *entity.ServicePackage
	Addon    *entity.Addon
	Quantity int

	// OriginalID is the booking-side reference. For unresolved lines it is
	// the only information available about the missing record.
	OriginalID uuid.UUID

	// Source records which booking list the reference came from, so an
	// unresolved line can still name what kind of record is missing.
	Source LineKind
}

// Amount returns the line amount in cents. Packages have an implicit
// quantity of 1; addons multiply price by quantity. Unresolved lines have
// no defined amount and return 0; the calculator refuses to sum them.
func (li *LineItem) Amount() int64 {
	switch li.Kind {
	case LinePackage:
		return li.Package.Price
	case LineAddon:
		return li.Addon.Price * int64(li.Quantity)
	}
	return 0
}

// Resolve joins a booking's ordered package and addon references against the
// catalog, producing one line item per reference: packages first, then
// addons, both in booking order. Duplicated references yield duplicated
// lines. Unmatched IDs produce LineUnresolved entries instead of being
// dropped, so the caller decides how to handle the inconsistency.
//
// Resolve is a pure function of its inputs and performs no I/O.
func Resolve(booking *entity.Booking, catalog *Catalog) []LineItem {
	lines := make([]LineItem, 0, len(booking.PackageRefs)+len(booking.AddonRefs))

	for _, id := range booking.PackageIDs() {
		pkg, ok := catalog.PackageByID(id)
		if !ok {
			lines = append(lines, LineItem{Kind: LineUnresolved, OriginalID: id, Source: LinePackage})
			continue
		}
		lines = append(lines, LineItem{
			Kind:       LinePackage,
			Package:    pkg,
			Quantity:   1,
			OriginalID: id,
			Source:     LinePackage,
		})
	}

	for _, id := range booking.AddonIDs() {
		addon, ok := catalog.AddonByID(id)
		if !ok {
			lines = append(lines, LineItem{Kind: LineUnresolved, OriginalID: id, Source: LineAddon})
			continue
		}
		lines = append(lines, LineItem{
			Kind:       LineAddon,
			Addon:      addon,
			Quantity:   addon.Quantity,
			OriginalID: id,
			Source:     LineAddon,
		})
	}

	return lines
}
