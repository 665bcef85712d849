package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	throttleWindow = 15 * time.Minute
	throttleLimit  = 10
)

// LoginThrottle counts failed login attempts per username in Redis.
// Key format: login_fail:<username>, expiring after throttleWindow.
// Callers treat errors as advisory so a Redis outage never locks logins.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// TooMany reports whether the username has exhausted its failure budget
// within the current window.
func (t *LoginThrottle) TooMany(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= throttleLimit, nil
}

// RecordFailure increments the failure counter, starting the expiry window
// on the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, throttleWindow).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *LoginThrottle) key(username string) string {
	return "login_fail:" + username
}
