package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"herotech/pkg/generic"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (r *RedisCache) Get(ctx context.Context, key string) (generic.Page[bson.M], error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return generic.Page[bson.M]{}, ErrCacheMiss
	}
	if err != nil {
		return generic.Page[bson.M]{}, fmt.Errorf("redis get failed: %w", err)
	}

	var page generic.Page[bson.M]
	if err := json.Unmarshal(data, &page); err != nil {
		return generic.Page[bson.M]{}, fmt.Errorf("unmarshal cached page failed: %w", err)
	}
	return page, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, page generic.Page[bson.M]) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("marshal page failed: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
