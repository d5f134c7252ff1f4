// Package cache provides a read-through Redis cache for the catalog
// repositories. The full catalog is fetched on every invoice render, so the
// two ListAll calls are the hottest reads in the system; mutations are rare
// and simply drop the cached copy.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/enum"
	domainRepo "github.com/framelight/studio-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	packageListKey = "catalog:packages"
	addonListKey   = "catalog:addons"
)

// cachedPackage mirrors entity.ServicePackage with plain cent fields.
// The entity's custom JSON marshaling is for API responses and does not
// round-trip, so the cache keeps its own encoding.
type cachedPackage struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"price_cents"`
	Deliverables string    `json:"deliverables"`
	IsPopular    bool      `json:"is_popular"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type cachedAddon struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Quantity    int       `json:"quantity"`
	IsTaxable   bool      `json:"is_taxable"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PackageCache decorates a PackageRepository with Redis caching of ListAll
type PackageCache struct {
	inner domainRepo.PackageRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewPackageCache creates a caching decorator around a package repository
func NewPackageCache(inner domainRepo.PackageRepository, rdb *redis.Client, ttl time.Duration) domainRepo.PackageRepository {
	return &PackageCache{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *PackageCache) Create(ctx context.Context, pkg *entity.ServicePackage) error {
	if err := c.inner.Create(ctx, pkg); err != nil {
		return err
	}
	c.invalidate(ctx, packageListKey)
	return nil
}

func (c *PackageCache) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServicePackage, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *PackageCache) Update(ctx context.Context, pkg *entity.ServicePackage) error {
	if err := c.inner.Update(ctx, pkg); err != nil {
		return err
	}
	c.invalidate(ctx, packageListKey)
	return nil
}

func (c *PackageCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, packageListKey)
	return nil
}

func (c *PackageCache) ListAll(ctx context.Context) ([]entity.ServicePackage, error) {
	if data, err := c.rdb.Get(ctx, packageListKey).Bytes(); err == nil {
		var cached []cachedPackage
		if err := json.Unmarshal(data, &cached); err == nil {
			packages := make([]entity.ServicePackage, len(cached))
			for i, p := range cached {
				packages[i] = entity.ServicePackage{
					ID:           p.ID,
					Name:         p.Name,
					Description:  p.Description,
					Price:        p.PriceCents,
					Deliverables: p.Deliverables,
					IsPopular:    p.IsPopular,
					Category:     enum.PackageCategory(p.Category),
					CreatedAt:    p.CreatedAt,
					UpdatedAt:    p.UpdatedAt,
				}
			}
			return packages, nil
		}
	}

	packages, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	cached := make([]cachedPackage, len(packages))
	for i, p := range packages {
		cached[i] = cachedPackage{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			PriceCents:   p.Price,
			Deliverables: p.Deliverables,
			IsPopular:    p.IsPopular,
			Category:     string(p.Category),
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		}
	}
	if data, err := json.Marshal(cached); err == nil {
		if err := c.rdb.Set(ctx, packageListKey, data, c.ttl).Err(); err != nil {
			log.Printf("Warning: failed to cache package catalog: %v", err)
		}
	}

	return packages, nil
}

func (c *PackageCache) invalidate(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("Warning: failed to invalidate %s: %v", key, err)
	}
}

// AddonCache decorates an AddonRepository with Redis caching of ListAll
type AddonCache struct {
	inner domainRepo.AddonRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewAddonCache creates a caching decorator around an addon repository
func NewAddonCache(inner domainRepo.AddonRepository, rdb *redis.Client, ttl time.Duration) domainRepo.AddonRepository {
	return &AddonCache{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *AddonCache) Create(ctx context.Context, addon *entity.Addon) error {
	if err := c.inner.Create(ctx, addon); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *AddonCache) GetByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *AddonCache) Update(ctx context.Context, addon *entity.Addon) error {
	if err := c.inner.Update(ctx, addon); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *AddonCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *AddonCache) ListAll(ctx context.Context) ([]entity.Addon, error) {
	if data, err := c.rdb.Get(ctx, addonListKey).Bytes(); err == nil {
		var cached []cachedAddon
		if err := json.Unmarshal(data, &cached); err == nil {
			addons := make([]entity.Addon, len(cached))
			for i, a := range cached {
				addons[i] = entity.Addon{
					ID:          a.ID,
					Description: a.Description,
					Price:       a.PriceCents,
					Quantity:    a.Quantity,
					IsTaxable:   a.IsTaxable,
					CreatedAt:   a.CreatedAt,
					UpdatedAt:   a.UpdatedAt,
				}
			}
			return addons, nil
		}
	}

	addons, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	cached := make([]cachedAddon, len(addons))
	for i, a := range addons {
		cached[i] = cachedAddon{
			ID:          a.ID,
			Description: a.Description,
			PriceCents:  a.Price,
			Quantity:    a.Quantity,
			IsTaxable:   a.IsTaxable,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		}
	}
	if data, err := json.Marshal(cached); err == nil {
		if err := c.rdb.Set(ctx, addonListKey, data, c.ttl).Err(); err != nil {
			log.Printf("Warning: failed to cache addon catalog: %v", err)
		}
	}

	return addons, nil
}

func (c *AddonCache) invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, addonListKey).Err(); err != nil {
		log.Printf("Warning: failed to invalidate %s: %v", addonListKey, err)
	}
}
