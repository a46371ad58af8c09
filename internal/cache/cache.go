// Package cache is a small read-through cache in front of the report
// endpoints. Reports are recomputed aggregates over the whole history, so
// a short TTL takes the repeated-dashboard-refresh load off Postgres.
// Without a Redis address the cache is a transparent no-op.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at addr. An empty addr or a failed ping yields a
// disabled cache; callers do not need to care which.
func New(addr string, ttl time.Duration) *Cache {
	if addr == "" {
		return &Cache{ttl: ttl}
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return &Cache{ttl: ttl}
	}

	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Enabled() bool { return c.client != nil }

// Fetch returns the cached JSON for key, or computes it, stores it and
// returns it. Cache failures fall back to compute; they never surface.
func (c *Cache) Fetch(ctx context.Context, key string, compute func() any) any {
	if c.client != nil {
		if raw, err := c.client.Get(ctx, key).Result(); err == nil {
			var out any
			if json.Unmarshal([]byte(raw), &out) == nil {
				return out
			}
		}
	}

	value := compute()

	if c.client != nil {
		if raw, err := json.Marshal(value); err == nil {
			c.client.Set(ctx, key, raw, c.ttl)
		}
	}

	return value
}
