package cache

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	redisclient "github.com/taskora/client-go/cmd/redis"
)

// Repository is a JSON read-through cache for public catalog listings.
type Repository interface {
	GetJSON(ctx context.Context, key string, out interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type redisCache struct{}

// NewRepository returns a Repository backed by the shared Redis client.
// Without a client every lookup is a miss and every write a no-op.
func NewRepository() Repository {
	return &redisCache{}
}

func (r *redisCache) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return false, nil
	}

	blob, err := client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(blob, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, blob, ttl).Err()
}
