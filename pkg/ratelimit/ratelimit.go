// Package ratelimit builds fixed-window attempt limiters backed by Redis or process memory.
package ratelimit

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// Rate allows limit hits per window. Non-positive limits are treated as 1 and
// non-positive windows as one minute.
func Rate(limit int, window time.Duration) limiter.Rate {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return limiter.Rate{Period: window, Limit: int64(limit)}
}

// NewMemory returns a limiter counting attempts in process memory.
func NewMemory(rate limiter.Rate) *limiter.Limiter {
	return limiter.New(memory.NewStore(), rate)
}

// NewRedis returns a limiter sharing counters across instances. Keys are namespaced by prefix.
func NewRedis(client *redis.Client, rate limiter.Rate, prefix string) (*limiter.Limiter, error) {
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: prefix})
	if err != nil {
		return nil, fmt.Errorf("redis rate limit store: %w", err)
	}
	return limiter.New(store, rate), nil
}

// RetryAfter returns the whole seconds from now until reset (unix seconds), at least 1.
func RetryAfter(reset int64, now time.Time) int {
	if wait := reset - now.Unix(); wait > 0 {
		return int(wait)
	}
	return 1
}
