package localcache

import (
	"context"
	"errors"
	"fmt"

	"fitguide/fitness-app/internal/domain"

	"github.com/go-redis/redis/v8"
)

// RedisCache stores the cache keys in redis, prefixed by a namespace so
// several devices (or test runs) can share one server.
type RedisCache struct {
	redisClient *redis.Client
	namespace   string
}

var _ Cache = (*RedisCache)(nil)

func NewRedisCache(redisClient *redis.Client, namespace string) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
		namespace:   namespace,
	}
}

func (c *RedisCache) key(k string) string {
	if c.namespace == "" {
		return k
	}
	return c.namespace + "||" + k
}

func (c *RedisCache) LoadLogs(ctx context.Context) ([]domain.WorkoutLog, error) {
	cmd := c.redisClient.Get(ctx, c.key(LogsKey))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.WorkoutLog{}, nil
		}
		return nil, fmt.Errorf("redis get logs: %w", err)
	}
	return decodeLogs([]byte(cmd.Val()))
}

func (c *RedisCache) SaveLogs(ctx context.Context, logs []domain.WorkoutLog) error {
	data, err := encodeLogs(logs)
	if err != nil {
		return err
	}
	if err := c.redisClient.Set(ctx, c.key(LogsKey), string(data), 0).Err(); err != nil {
		return fmt.Errorf("redis set logs: %w", err)
	}
	return nil
}

func (c *RedisCache) DeviceID(ctx context.Context) (string, error) {
	cmd := c.redisClient.Get(ctx, c.key(DeviceIDKey))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get device id: %w", err)
	}
	return cmd.Val(), nil
}

func (c *RedisCache) SetDeviceID(ctx context.Context, id string) error {
	if err := c.redisClient.Set(ctx, c.key(DeviceIDKey), id, 0).Err(); err != nil {
		return fmt.Errorf("redis set device id: %w", err)
	}
	return nil
}

func (c *RedisCache) ClearDeviceID(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, c.key(DeviceIDKey)).Err(); err != nil {
		return fmt.Errorf("redis del device id: %w", err)
	}
	return nil
}
