package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusconnect/campusconnect/internal/repository"
)

type staticItemProvider struct {
	rows []*repository.ItemDetails
}

func (p *staticItemProvider) GetAvailable(_ context.Context) ([]*repository.ItemDetails, error) {
	return p.rows, nil
}

func availableItem(name string) *repository.ItemDetails {
	return &repository.ItemDetails{
		Item: repository.Item{
			ID:                 uuid.New(),
			OwnerID:            uuid.New(),
			Name:               name,
			AvailabilityStatus: "available",
		},
		OwnerName: "alice",
	}
}

func TestItemCache_LoadInitialData(t *testing.T) {
	t.Parallel()

	c := NewItemCache(zap.NewNop())
	first := availableItem("Graphing Calculator")
	second := availableItem("Camping Tent")

	err := c.LoadInitialData(context.Background(), &staticItemProvider{rows: []*repository.ItemDetails{first, second}})

	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	got, ok := c.Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, "Graphing Calculator", got.Name)
}

func TestItemCache_SetEvictsUnavailable(t *testing.T) {
	t.Parallel()

	c := NewItemCache(zap.NewNop())
	item := availableItem("Bike Pump")
	c.Set(item)
	require.Equal(t, 1, c.Len())

	item.AvailabilityStatus = "borrowed"
	c.Set(item)

	_, ok := c.Get(item.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestItemCache_SetStatus(t *testing.T) {
	t.Parallel()

	c := NewItemCache(zap.NewNop())
	item := availableItem("Acoustic Guitar")
	c.Set(item)

	c.SetStatus(item.ID, "borrowed")
	_, ok := c.Get(item.ID)
	assert.False(t, ok)

	// restating available for an evicted id is a no-op, readers refill it
	c.SetStatus(item.ID, "available")
	_, ok = c.Get(item.ID)
	assert.False(t, ok)
}

func TestItemCache_Delete(t *testing.T) {
	t.Parallel()

	c := NewItemCache(zap.NewNop())
	item := availableItem("Board Game")
	c.Set(item)

	c.Delete(item.ID)

	_, ok := c.Get(item.ID)
	assert.False(t, ok)
}
