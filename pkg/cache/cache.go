package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLStats   = 1 * time.Minute // rating statistics pages (recomputed from ratings)
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixStatsMessages = "stats:messages:"
	PrefixStatsUsers    = "stats:users:"
)

// Service is the redis cache service consumed by the statistics reports
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Statistics pages
	GetStats(ctx context.Context, key string, dest interface{}) error
	SetStats(ctx context.Context, key string, data interface{}) error
	InvalidateStats(ctx context.Context) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// StatsMessagesKey builds the cache key for a messages-ratings page
func StatsMessagesKey(forumID uint64, offset, limit int) string {
	return fmt.Sprintf("%s%d:%d:%d", PrefixStatsMessages, forumID, offset, limit)
}

// StatsUsersKey builds the cache key for a users-ratings page
func StatsUsersKey(forumID uint64, offset, limit int) string {
	return fmt.Sprintf("%s%d:%d:%d", PrefixStatsUsers, forumID, offset, limit)
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service; a nil client degrades to no-ops
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // no redis, skip caching
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (c *redisCache) GetStats(ctx context.Context, key string, dest interface{}) error {
	return c.Get(ctx, key, dest)
}

func (c *redisCache) SetStats(ctx context.Context, key string, data interface{}) error {
	return c.Set(ctx, key, data, TTLStats)
}

// InvalidateStats drops every cached statistics page. Called after any write
// that changes ratings or message ownership.
func (c *redisCache) InvalidateStats(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.deleteByPattern(ctx, PrefixStatsMessages+"*"); err != nil {
		return err
	}
	return c.deleteByPattern(ctx, PrefixStatsUsers+"*")
}

// deleteByPattern removes all keys matching the pattern using SCAN
func (c *redisCache) deleteByPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
