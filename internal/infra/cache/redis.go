package cache

import (
	"context"
	"time"

	"venue-marketplace/internal/infra"
	"venue-marketplace/internal/pkg/config"
	"venue-marketplace/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 500

func NewClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, func(), error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse redis url")
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// ScanKeys walks the keyspace with SCAN so large databases are never blocked
// the way KEYS would block them.
func (s *RedisStore) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to scan cache keys", err, infra.KindCacheFailure)
	}
	return keys, nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	n, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete cache keys", err, infra.KindCacheFailure)
	}
	return n, nil
}
