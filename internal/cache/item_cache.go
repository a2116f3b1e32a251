// Package cache holds an in-memory read-through cache of available items.
// It shields the catalog's hottest read path (item detail lookups) from the
// database; writers keep it coherent by evicting or restating entries after
// every availability change.
package cache

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusconnect/campusconnect/internal/metrics"
	"github.com/campusconnect/campusconnect/internal/repository"
)

type availableItemsProvider interface {
	GetAvailable(ctx context.Context) ([]*repository.ItemDetails, error)
}

// ItemCache caches item details keyed by item id. Only items currently
// available for borrowing are kept; anything else is evicted on sight.
type ItemCache struct {
	mu     sync.RWMutex
	items  map[uuid.UUID]*repository.ItemDetails
	logger *zap.Logger
}

func NewItemCache(logger *zap.Logger) *ItemCache {
	return &ItemCache{
		items:  make(map[uuid.UUID]*repository.ItemDetails),
		logger: logger,
	}
}

// LoadInitialData warms the cache with every currently available item.
func (c *ItemCache) LoadInitialData(ctx context.Context, items availableItemsProvider) error {
	rows, err := items.GetAvailable(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, row := range rows {
		c.items[row.ID] = row
	}
	metrics.ItemCacheEntries.Set(float64(len(c.items)))

	c.logger.Info("item cache warmed", zap.Int("items", len(c.items)))
	return nil
}

func (c *ItemCache) Get(id uuid.UUID) (*repository.ItemDetails, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// Set stores an item if it is available and evicts it otherwise.
func (c *ItemCache) Set(item *repository.ItemDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if item.AvailabilityStatus == "available" {
		c.items[item.ID] = item
	} else {
		delete(c.items, item.ID)
	}
	metrics.ItemCacheEntries.Set(float64(len(c.items)))
}

// SetStatus restates a cached item's availability. A transition away from
// available evicts the entry so readers fall back to the database.
func (c *ItemCache) SetStatus(id uuid.UUID, status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if status != "available" {
		delete(c.items, id)
	} else if item, ok := c.items[id]; ok {
		item.AvailabilityStatus = status
	}
	metrics.ItemCacheEntries.Set(float64(len(c.items)))
}

func (c *ItemCache) Delete(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	metrics.ItemCacheEntries.Set(float64(len(c.items)))
}

// Len reports the number of cached items.
func (c *ItemCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
