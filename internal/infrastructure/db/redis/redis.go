// Package redis holds the Redis client setup and the login throttle built
// on top of it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config carries the connection settings for the throttle backend.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration // bounds the startup ping; defaultTimeout when zero
}

// NewClient builds a client without touching the network. go-redis dials
// lazily, so a server that is down at construction time is retried on first
// use.
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
}

// Connect builds a client and verifies the server is reachable before
// returning it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client := NewClient(cfg)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
