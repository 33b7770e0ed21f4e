package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps go-redis for the TTS response cache. A nil *Client is a
// valid no-op cache so callers never branch on whether Redis is configured.
type Client struct {
	client *redis.Client
}

// NewClient connects to the given address. Returns nil when addr is empty,
// which disables caching.
func NewClient(addr string) *Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	return &Client{client: client}
}

// Set stores a value with the given expiration.
func (r *Client) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if r == nil {
		return nil
	}
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get returns the cached value and whether it was present.
func (r *Client) Get(ctx context.Context, key string) (string, bool) {
	if r == nil {
		return "", false
	}
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Ping checks connectivity; used by the health endpoint.
func (r *Client) Ping(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.client.Ping(ctx).Err()
}
