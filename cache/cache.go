// Package cache stores upstream responses for a limited time so that repeated
// report requests do not hit the platforms on every page load.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get returns the value stored under key. The bool is false if the key is
	// missing or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type refreshKey struct{}

// WithRefresh marks ctx so read-through clients skip cached values, fetch
// fresh ones and store them.
func WithRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshKey{}, true)
}

// Refreshing reports whether ctx was marked with WithRefresh.
func Refreshing(ctx context.Context) bool {
	refresh, _ := ctx.Value(refreshKey{}).(bool)
	return refresh
}
