package cache

import "context"

// Cache is a JSON-over-key/value store with TTL semantics. The consistency
// guarantee is last write/invalidate wins: a Del makes the next Get of that
// key a miss, with no ordering relative to concurrent readers.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
