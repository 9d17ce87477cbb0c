package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
	"github.com/vibi004/75ChallengeProgramm/pkg/cleanup"
)

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the Redis instance behind redisURL. Values are
// stored as JSON.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.New("parsing redis url error: " + err.Error())
	}
	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, errors.New("pinging redis error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisCache{
		client: client,
	}, nil
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) error {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return errors.New("redis get error: " + err.Error())
	}
	return sonic.UnmarshalString(val, dest)
}

func (r *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	marshaled, err := sonic.Marshal(value)
	if err != nil {
		return errors.New("marshalling cache value error: " + err.Error())
	}
	return r.client.Set(ctx, key, marshaled, ttl).Err()
}
