// Package cache implements the process-wide query cache: a key/value store
// with a fixed TTL, single-key invalidation and prefix-scoped bulk
// invalidation. The cache is an optimization only: every lookup that
// misses, fails or decodes badly falls through to recomputing the value, so
// the cache is never the sole source of truth.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Store is the minimal contract shared by the Redis-backed store and the
// in-process fallback. Keys are logical names; implementations apply the
// configured prefix themselves. All methods are safe for concurrent use.
type Store interface {
	// Get returns the raw cached bytes and true on a fresh hit.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores val under key for the store's configured TTL.
	Set(ctx context.Context, key string, val []byte)
	// Invalidate drops a single entry.
	Invalidate(ctx context.Context, key string)
	// InvalidateAll drops every entry under the store's prefix.
	InvalidateAll(ctx context.Context)
}

// GetOrCompute returns the cached value for key if present and unexpired,
// otherwise runs compute, stores the JSON-encoded result and returns it.
// A nil store, a miss or an undecodable entry all degrade to a plain call
// to compute. Errors from compute are returned as-is and nothing is cached.
func GetOrCompute[T any](ctx context.Context, s Store, key string, compute func(context.Context) (T, error)) (T, error) {
	if s != nil {
		if b, ok := s.Get(ctx, key); ok {
			var v T
			if err := json.Unmarshal(b, &v); err == nil {
				return v, nil
			}
		}
	}
	v, err := compute(ctx)
	if err != nil {
		return v, err
	}
	if s != nil {
		if b, err := json.Marshal(v); err == nil {
			s.Set(ctx, key, b)
		}
	}
	return v, nil
}

// clampTTL guards against zero or negative TTLs from misconfiguration.
func clampTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return time.Hour
	}
	return ttl
}
