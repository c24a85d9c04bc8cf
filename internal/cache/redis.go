// Package cache wraps the backend's redis usage: a shared client plus
// JSON cache-aside helpers. Every helper fails open when redis is absent so
// the server runs cache-less in development and tests that don't care.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// New connects a redis client, or returns nil when no URL is configured.
// A nil client disables caching rather than failing the server.
func New(redisURL string, logger *slog.Logger) *redis.Client {
	if redisURL == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: redisURL})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Warn("redis unavailable, continuing without cache",
				slog.String("error", err.Error()))
		}
		return nil
	}
	return client
}
