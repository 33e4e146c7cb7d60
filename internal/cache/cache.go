// Package cache stores encyclopedia summaries between lookups, in process
// memory or in a Redis/Dragonfly server.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Store is a byte-oriented key/value cache with per-entry expiry.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// HealthCheck reports whether the backend is reachable.
	HealthCheck(ctx context.Context) error

	Close() error
}

// Open returns the Store described by url. An empty url or "memory://"
// selects the in-process cache; redis:// and rediss:// connect to a server.
func Open(ctx context.Context, url string) (Store, error) {
	switch {
	case url == "" || url == "memory://":
		return NewMemory(), nil
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return NewRedis(ctx, url)
	default:
		return nil, fmt.Errorf("unsupported cache URL %q", url)
	}
}
