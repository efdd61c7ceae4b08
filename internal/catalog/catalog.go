package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Catalog holds the last successfully fetched product list.
type Catalog struct {
	source       Source
	snapshots    SnapshotLoader
	snapshotPath string
	logger       zerolog.Logger

	sfg      singleflight.Group
	mu       sync.RWMutex
	products []model.Product
	loaded   bool
}

// NewCatalog creates an empty catalog. snapshots may be nil.
func NewCatalog(source Source, snapshots SnapshotLoader, snapshotPath string, logger zerolog.Logger) *Catalog {
	return &Catalog{
		source:       source,
		snapshots:    snapshots,
		snapshotPath: snapshotPath,
		logger:       logger.With().Str("component", "catalog").Logger(),
	}
}

// Refresh fetches the live catalog, falling back to the snapshot. When both
// fail the previous list is kept and the error is returned. Concurrent calls
// share one fetch.
func (c *Catalog) Refresh(ctx context.Context) (int, error) {
	v, err, shared := c.sfg.Do("refresh", func() (interface{}, error) {
		products, err := c.source.Fetch(ctx)
		if err == nil {
			c.replace(products)
			return len(products), nil
		}

		c.logger.Warn().Err(err).Msg("live catalog unavailable")

		if c.snapshots == nil {
			return 0, fmt.Errorf("failed to refresh catalog: %w", err)
		}

		products, snapErr := c.snapshots.Load(ctx, c.snapshotPath)
		if snapErr != nil {
			c.logger.Error().
				Err(snapErr).
				Str("snapshot", c.snapshotPath).
				Msg("catalog snapshot unavailable, keeping previous catalog")
			return 0, fmt.Errorf("failed to refresh catalog: %w", snapErr)
		}

		c.replace(products)
		return len(products), nil
	})
	if err != nil {
		return 0, err
	}

	c.logger.Debug().Bool("shared", shared).Int("products", v.(int)).Msg("catalog refreshed")

	return v.(int), nil
}

func (c *Catalog) replace(products []model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = slices.Clone(products)
	c.loaded = true
}

// Products returns a copy of the current product list.
func (c *Catalog) Products() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.products)
}

// Loaded reports whether any refresh has succeeded.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}
