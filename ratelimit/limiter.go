// Package ratelimit gates high-volume operations with per-key windowed
// counters in redis. Keys are independent; there is no cross-key
// coordination and no state held in-process, so any number of API
// replicas can share one limiter.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result reports one admission decision. RetryAfter is only meaningful
// when Allowed is false.
type Result struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

type Limiter struct {
	client *redis.Client
	prefix string
}

func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{
		client: client,
		prefix: "ratelimit:",
	}
}

func (l *Limiter) key(key string, window time.Duration) string {
	return fmt.Sprintf("%s%s:%d", l.prefix, key, int64(window.Seconds()))
}

// Allow counts one attempt against the key's window and reports whether
// it fits under the limit. The window opens on the first attempt and
// closes when the key expires. A denied attempt still counts; abusive
// retries keep the window loaded.
func (l *Limiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*Result, error) {
	k := l.key(key, window)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return nil, err
	}

	ttl, err := l.client.PTTL(ctx, k).Result()
	if err != nil {
		return nil, err
	}
	if n == 1 || ttl < 0 {
		// first hit of the window, or the expiry got lost between a
		// previous INCR and EXPIRE
		if err := l.client.Expire(ctx, k, window).Err(); err != nil {
			return nil, err
		}
		ttl = window
	}

	if n > limit {
		return &Result{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: ttl,
		}, nil
	}

	return &Result{
		Allowed:   true,
		Remaining: limit - n,
	}, nil
}

// Reset clears the counter for a key, for all windows it may be counted
// under. Intended for tests and operator tooling.
func (l *Limiter) Reset(ctx context.Context, key string, window time.Duration) error {
	return l.client.Del(ctx, l.key(key, window)).Err()
}
