package nhl

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a shared box-score cache for deployments where multiple
// fetcher runs (or other tooling) want to reuse the same documents.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) key(gameID int) string {
	return fmt.Sprintf("boxscore:%d", gameID)
}

func (c *RedisCache) Get(ctx context.Context, gameID int) ([]byte, error) {
	raw, err := c.client.Get(ctx, c.key(gameID)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	return raw, err
}

func (c *RedisCache) Put(ctx context.Context, gameID int, raw []byte) error {
	// Documents for finished games never change; no TTL.
	return c.client.Set(ctx, c.key(gameID), raw, 0).Err()
}
