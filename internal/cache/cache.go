package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FeedKeyPrefix scopes cached global-feed listings. Group, profile, and
// follow feeds are never cached.
const FeedKeyPrefix = "index_page"

// DefaultFeedTTL is how long a cached global-feed page stays valid. The
// cache is expiry-only: post writes do not invalidate it.
const DefaultFeedTTL = 20 * time.Second

// FeedPageKey returns the cache key for one page of the global feed.
func FeedPageKey(page int) string {
	return fmt.Sprintf("%s:page:%d", FeedKeyPrefix, page)
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first, on miss it calls fetch (which should populate dest),
// then stores the result in Redis with ttl. fetch must write into dest.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) (err error) {
	found, err := GetJSON(ctx, key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	// Store into cache (best-effort)
	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}

// ClearFeed removes every cached global-feed page. This is the explicit
// cache-clear; normal post writes never call it.
func ClearFeed(ctx context.Context) error {
	if client == nil {
		return nil
	}
	keys, err := client.Keys(ctx, FeedKeyPrefix+":*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
