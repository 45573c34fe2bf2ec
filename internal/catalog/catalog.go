// Package catalog caches the product catalog after its first successful
// fetch. The snapshot is never invalidated on its own; Refresh replaces it
// on demand.
package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	domproduct "example.com/storefront/app/internal/domain/product"
)

type Cache struct {
	lister domproduct.Lister
	sfg    singleflight.Group // collapses concurrent first loads

	mu       sync.RWMutex
	products []*domproduct.Product
	byID     map[string]*domproduct.Product
	loaded   bool
}

func NewCache(lister domproduct.Lister) *Cache {
	return &Cache{lister: lister}
}

// Products returns the cached catalog, loading it on first use. The filter
// is applied to the snapshot, not pushed to the backend.
func (c *Cache) Products(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domproduct.Product, 0, len(c.products))
	for _, p := range c.products {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Lookup resolves a product by ID from the snapshot.
func (c *Cache) Lookup(ctx context.Context, productID string) (*domproduct.Product, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byID[productID]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	return p, nil
}

// Refresh discards the snapshot and fetches a fresh one.
func (c *Cache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
	return c.ensure(ctx)
}

func (c *Cache) ensure(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := c.sfg.Do("catalog", func() (any, error) {
		products, err := c.lister.ListProducts(ctx)
		if err != nil {
			return nil, err
		}

		byID := make(map[string]*domproduct.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		c.mu.Lock()
		c.products = products
		c.byID = byID
		c.loaded = true
		c.mu.Unlock()
		return nil, nil
	})
	return err
}
