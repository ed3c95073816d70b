// Package ratelimit decides whether a client may make another request.
package ratelimit

import "context"

// Limiter reports whether a request keyed by client identity may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
