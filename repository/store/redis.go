package store

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"
	redisclient "github.com/taskora/client-go/cmd/redis"
	"github.com/taskora/client-go/model"
)

type redisStore struct{}

// NewRedisStore returns a SessionStore backed by the shared Redis client. With
// no client configured every operation degrades to a no-op, mirroring a
// storage-less browser context.
func NewRedisStore() SessionStore {
	return &redisStore{}
}

func (s *redisStore) Save(ctx context.Context, token string, identity *model.Identity) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	blob, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	if err := client.Set(ctx, TokenKey, token, 0).Err(); err != nil {
		return err
	}
	return client.Set(ctx, UserKey, blob, 0).Err()
}

func (s *redisStore) Load(ctx context.Context) (string, *model.Identity, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil, nil
	}

	token, err := client.Get(ctx, TokenKey).Result()
	if err == goredis.Nil {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	blob, err := client.Get(ctx, UserKey).Bytes()
	if err == goredis.Nil {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	var identity model.Identity
	if err := json.Unmarshal(blob, &identity); err != nil {
		return "", nil, err
	}
	return token, &identity, nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, TokenKey, UserKey).Err()
}
