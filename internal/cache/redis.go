package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the cache with a Redis server. All entries live under a
// common key prefix so InvalidateAll can drop the application's entries
// without touching anything else on the server. Redis errors are swallowed:
// a failed read is a miss and a failed write just means the next read
// recomputes.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore wraps an established Redis client. The prefix namespaces
// every key and ttl applies to every entry.
func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: clampTTL(ttl)}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (s *RedisStore) Set(ctx context.Context, key string, val []byte) {
	_ = s.rdb.SetEx(ctx, s.prefix+key, val, s.ttl).Err()
}

func (s *RedisStore) Invalidate(ctx context.Context, key string) {
	_ = s.rdb.Del(ctx, s.prefix+key).Err()
}

// InvalidateAll scans for every key under the prefix and deletes them in
// batches. SCAN is used instead of KEYS so a large keyspace does not block
// the server.
func (s *RedisStore) InvalidateAll(ctx context.Context) {
	iter := s.rdb.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= 100 {
			_ = s.rdb.Del(ctx, batch...).Err()
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		_ = s.rdb.Del(ctx, batch...).Err()
	}
}
