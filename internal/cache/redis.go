package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisStore(rdb *redis.Client, ctx context.Context) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisStore) Get(key string) ([]byte, bool, error) {
	value, err := s.rdb.Get(s.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(key string, value []byte, ttl time.Duration) error {
	return s.rdb.Set(s.ctx, key, value, ttl).Err()
}

func (s *RedisStore) Invalidate(key string) error {
	return s.rdb.Del(s.ctx, key).Err()
}
