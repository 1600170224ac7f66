package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisRepository struct {
	client *redis.Client
	key    string
}

func NewRedisRepository(client *redis.Client, key string) *RedisRepository {
	if client == nil {
		panic("repository.NewRedisRepository: client is nil")
	}
	if key == "" {
		key = DefaultStateKey
	}
	return &RedisRepository{client: client, key: key}
}

func (r *RedisRepository) Get(ctx context.Context) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: redis get %s: %w", ErrPersistence, r.key, err)
	}
	return data, true, nil
}

// Set stores the blob without expiry; the state lives as long as the session.
func (r *RedisRepository) Set(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %w", ErrPersistence, r.key, err)
	}
	return nil
}
