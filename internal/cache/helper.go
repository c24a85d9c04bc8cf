package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetJSON attempts to get the key from redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found or
// no client is configured.
func GetJSON(ctx context.Context, client *redis.Client, key string, dest any) (bool, error) {
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
func SetJSON(ctx context.Context, client *redis.Client, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// CacheAside tries redis first, on miss calls fetch (which must write into
// dest), then stores the result with ttl. The store is best-effort.
func CacheAside(ctx context.Context, client *redis.Client, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, client, key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = SetJSON(ctx, client, key, dest, ttl)
	return nil
}

// Invalidate drops keys matching the given patterns. Best-effort; a cold
// cache is never an error.
func Invalidate(ctx context.Context, client *redis.Client, patterns ...string) {
	if client == nil {
		return
	}
	for _, pattern := range patterns {
		keys, err := client.Keys(ctx, pattern).Result()
		if err != nil || len(keys) == 0 {
			continue
		}
		client.Del(ctx, keys...)
	}
}
