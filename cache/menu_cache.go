package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"food-ordering-api/models"

	"github.com/redis/go-redis/v9"
)

// MenuCache is a read-through cache for public menu listings. A nil
// *MenuCache is valid and behaves as a permanent miss, so the app runs
// without redis configured.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, ttl: ttl}
}

func menuKey(restaurantID uint) string {
	return "menu:" + strconv.FormatUint(uint64(restaurantID), 10)
}

// Get returns the cached menu for a restaurant, if present.
func (c *MenuCache) Get(ctx context.Context, restaurantID uint) ([]models.MenuItem, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, menuKey(restaurantID)).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

// Set stores the menu for a restaurant. Failures are swallowed: the
// cache is an optimization, never a source of truth.
func (c *MenuCache) Set(ctx context.Context, restaurantID uint, items []models.MenuItem) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.client.Set(ctx, menuKey(restaurantID), raw, c.ttl)
}

// Invalidate drops the cached menu after a menu mutation.
func (c *MenuCache) Invalidate(ctx context.Context, restaurantID uint) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, menuKey(restaurantID))
}
