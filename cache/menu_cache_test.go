package cache

import (
	"context"
	"testing"
	"time"

	"food-ordering-api/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*MenuCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewMenuCache(client, time.Minute), mr
}

func TestMenuCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, 1)
	assert.False(t, ok, "empty cache must miss")

	items := []models.MenuItem{
		{ID: 1, RestaurantID: 1, Name: "Biryani", Price: decimal.RequireFromString("10.00"), Availability: true},
		{ID: 2, RestaurantID: 1, Name: "Lassi", Price: decimal.RequireFromString("2.50"), Availability: false},
	}
	c.Set(ctx, 1, items)

	got, ok := c.Get(ctx, 1)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "Biryani", got[0].Name)
	assert.True(t, got[0].Price.Equal(items[0].Price))
	assert.False(t, got[1].Availability)

	// Per-restaurant keys do not collide
	_, ok = c.Get(ctx, 2)
	assert.False(t, ok)
}

func TestMenuCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, 1, []models.MenuItem{{ID: 1, Name: "Biryani"}})
	c.Invalidate(ctx, 1)

	_, ok := c.Get(ctx, 1)
	assert.False(t, ok)
}

func TestMenuCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, 1, []models.MenuItem{{ID: 1, Name: "Biryani"}})
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, 1)
	assert.False(t, ok)
}

func TestNilMenuCacheIsNoOp(t *testing.T) {
	var c *MenuCache
	ctx := context.Background()

	c.Set(ctx, 1, []models.MenuItem{{ID: 1}})
	c.Invalidate(ctx, 1)
	_, ok := c.Get(ctx, 1)
	assert.False(t, ok)
}
