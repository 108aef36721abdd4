package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateCache stores exchange rates fetched from the upstream API so a burst
// of balance queries does not hammer it. Key format: rate:<base>:<currency>
type RateCache struct {
	client *redis.Client
	base   string
	ttl    time.Duration
}

func NewRateCache(client *redis.Client, base string, ttl time.Duration) *RateCache {
	return &RateCache{client: client, base: base, ttl: ttl}
}

// Get returns the cached rate for a currency; ok is false on a miss.
func (c *RateCache) Get(ctx context.Context, currency string) (rate float64, ok bool, err error) {
	val, err := c.client.Get(ctx, c.key(currency)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("rate cache get: %w", err)
	}
	rate, err = strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("rate cache parse: %w", err)
	}
	return rate, true, nil
}

// Set records a freshly fetched rate (expires after the configured TTL).
func (c *RateCache) Set(ctx context.Context, currency string, rate float64) error {
	return c.client.Set(ctx, c.key(currency), strconv.FormatFloat(rate, 'f', -1, 64), c.ttl).Err()
}

func (c *RateCache) key(currency string) string {
	return fmt.Sprintf("rate:%s:%s", c.base, currency)
}
