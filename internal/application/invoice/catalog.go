package invoice

import (
	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/google/uuid"
)

// Catalog holds the full set of known package and addon definitions for a
// render pass. The index maps are built once per load so lookups during
// resolution are O(1); the catalog is never mutated in place, a refresh
// replaces it wholesale.
type Catalog struct {
	packages map[uuid.UUID]*entity.ServicePackage
	addons   map[uuid.UUID]*entity.Addon
}

// NewCatalog builds a catalog from fully loaded package and addon sequences.
// Both slices must be complete; resolution against a partial catalog
// misreports valid references as missing.
func NewCatalog(packages []entity.ServicePackage, addons []entity.Addon) *Catalog {
	c := &Catalog{
		packages: make(map[uuid.UUID]*entity.ServicePackage, len(packages)),
		addons:   make(map[uuid.UUID]*entity.Addon, len(addons)),
	}
	for i := range packages {
		c.packages[packages[i].ID] = &packages[i]
	}
	for i := range addons {
		c.addons[addons[i].ID] = &addons[i]
	}
	return c
}

// PackageByID looks up a package by exact identity.
func (c *Catalog) PackageByID(id uuid.UUID) (*entity.ServicePackage, bool) {
	pkg, ok := c.packages[id]
	return pkg, ok
}

// AddonByID looks up an addon by exact identity.
func (c *Catalog) AddonByID(id uuid.UUID) (*entity.Addon, bool) {
	addon, ok := c.addons[id]
	return addon, ok
}

// PackageCount returns the number of packages in the catalog.
func (c *Catalog) PackageCount() int {
	return len(c.packages)
}

// AddonCount returns the number of addons in the catalog.
func (c *Catalog) AddonCount() int {
	return len(c.addons)
}
