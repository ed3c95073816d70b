package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

// ValkeyLimiter counts requests per key in fixed one-minute windows shared by
// every instance of the service.
type ValkeyLimiter struct {
	client valkey.Client
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewValkeyLimiter builds a limiter backed by Valkey.
func NewValkeyLimiter(client valkey.Client, prefix string, requestsPerMinute int) *ValkeyLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &ValkeyLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(requestsPerMinute),
		window: time.Minute,
		now:    time.Now,
	}
}

func (l *ValkeyLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := l.windowKey(key)
	count, err := l.client.Do(ctx, l.client.B().Incr().Key(windowKey).Build()).AsInt64()
	if err != nil {
		return false, fmt.Errorf("increment rate counter: %w", err)
	}
	if count == 1 {
		expire := l.client.B().Expire().Key(windowKey).Seconds(int64(l.window / time.Second)).Build()
		if err := l.client.Do(ctx, expire).Error(); err != nil {
			return false, fmt.Errorf("expire rate counter: %w", err)
		}
	}
	return count <= l.limit, nil
}

func (l *ValkeyLimiter) windowKey(key string) string {
	window := l.now().Truncate(l.window).Unix()
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, window)
}
