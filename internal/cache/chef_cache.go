package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cheflinkhq/chef-marketplace/internal/config"
)

const (
	verifiedChefsKey = "chefs:verified"
	verifiedChefsTTL = 5 * time.Minute
)

// ChefListCache keeps the public verified-chef listing out of the
// database on the hot path. A nil client disables caching entirely; every
// method degrades to a miss.
type ChefListCache struct {
	client *redis.Client
}

func New(cfg *config.Config) *ChefListCache {
	if cfg.RedisAddr == "" {
		return &ChefListCache{}
	}
	return &ChefListCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}),
	}
}

// GetVerified loads the cached listing into dest; ok is false on miss,
// disabled cache, or any redis error.
func (c *ChefListCache) GetVerified(ctx context.Context, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, verifiedChefsKey).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *ChefListCache) SetVerified(ctx context.Context, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, verifiedChefsKey, raw, verifiedChefsTTL)
}

// Invalidate drops the listing; called on approval, rejection, and
// profile updates so stale verification state never lingers past TTL.
func (c *ChefListCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, verifiedChefsKey)
}
