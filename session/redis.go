package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisStore keeps transient state in Redis.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Put(ctx context.Context, prefix string, ttl time.Duration, v any) (string, error) {
	token := uuid.NewString()
	if err := s.Save(ctx, prefix, token, ttl, v); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Save(ctx context.Context, prefix, token string, ttl time.Duration, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, prefix+token, raw, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, prefix, token string, v any) error {
	raw, err := s.rdb.Get(ctx, prefix+token).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), v)
}

func (s *RedisStore) Take(ctx context.Context, prefix, token string, v any) error {
	if err := s.Get(ctx, prefix, token, v); err != nil {
		return err
	}
	return s.rdb.Del(ctx, prefix+token).Err()
}

func (s *RedisStore) Delete(ctx context.Context, prefix, token string) error {
	return s.rdb.Del(ctx, prefix+token).Err()
}

func (s *RedisStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, key, "1", ttl).Result()
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
