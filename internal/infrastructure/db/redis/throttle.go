package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	defaultLockWindow  = 15 * time.Minute
)

// LoginThrottle tracks failed login attempts per username in Redis.
// Key format: login_attempts:<username>
//
// It is consulted at the HTTP boundary only; the authentication engine's
// check ordering is unaffected. Callers should fail open when Redis is
// unreachable.
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int
	window      time.Duration
}

// NewLoginThrottle wraps the given Redis client. Non-positive limits fall
// back to the defaults (5 failures, 15 minute lockout window).
func NewLoginThrottle(client *redis.Client, maxFailures int, window time.Duration) *LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultLockWindow
	}
	return &LoginThrottle{client: client, maxFailures: maxFailures, window: window}
}

// Blocked reports whether the username has exhausted its failure budget.
func (t *LoginThrottle) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxFailures, nil
}

// RecordFailure increments the failure counter; the first failure in a
// window starts the lockout clock.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *LoginThrottle) key(username string) string {
	return "login_attempts:" + username
}
