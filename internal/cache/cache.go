package cache

import (
	"context"
	"strings"
	"time"

	"SignalBoard/internal/model"
)

// DefaultTTL matches the refresh cadence of the upstream daily endpoints.
const DefaultTTL = time.Hour

// ComputeFunc produces the value on a cache miss.
type ComputeFunc func(ctx context.Context) (model.Series, error)

// Cache stores fetched series keyed by request parameters. Failed computes
// are returned to the caller and never stored.
type Cache interface {
	GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute ComputeFunc) (model.Series, error)
}

// Key joins request parameters into a cache key.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}
