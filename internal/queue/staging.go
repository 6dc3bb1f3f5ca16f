package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joseph-ayodele/scriptsense/internal/common"
)

const stagingPrefix = "scriptsense:upload:"

// StagingKey is the Redis key holding the bytes of one submission.
func StagingKey(requestID string) string {
	return stagingPrefix + requestID
}

// Stager holds upload bytes between Submit and the worker run.
type Stager interface {
	Put(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// RedisStager stages uploads as plain Redis strings with a TTL.
type RedisStager struct {
	rdb redis.Cmdable
}

func NewRedisStager(rdb redis.Cmdable) *RedisStager {
	return &RedisStager{rdb: rdb}
}

// NewRedisClient builds the go-redis client shared by staging and health checks.
func NewRedisClient(cfg common.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func (s *RedisStager) Put(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("stage upload %s: %w", key, err)
	}
	return nil
}

// Get returns common.ErrNotFound once the key expired or was consumed.
func (s *RedisStager) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, common.NewNotFoundError("staged upload " + key)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch staged upload %s: %w", key, err)
	}
	return data, nil
}

func (s *RedisStager) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
