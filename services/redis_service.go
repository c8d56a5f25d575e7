package services

import (
	"context"
	"encoding/json"
	"time"

	"paytrack/config"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the two listings served from redis. Every write path that
// changes what a listing would return deletes its key.
const (
	CustomerListCacheKey     = "customers:firstpage"
	NotificationListCacheKey = "notifications:all"
)

// CacheInvalidator drops a cached listing after a write.
type CacheInvalidator interface {
	Invalidate() error
}

// RedisInvalidator deletes one redis key. A nil client makes it a no-op so
// callers without a cache can still wire it.
type RedisInvalidator struct {
	Client *redis.Client
	Key    string
}

func (r RedisInvalidator) Invalidate() error {
	if r.Client == nil {
		return nil
	}
	return DeleteFromRedis(config.Ctx, r.Client, r.Key)
}

// GetFromRedis reads a cached JSON value into target; a cache miss leaves
// target untouched and returns nil.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// SetToRedis stores value as JSON with a ttl
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteFromRedis drops a cache key
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}
