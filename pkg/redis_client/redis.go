package redis_client

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/travigo/journey-explainer/pkg/config"
)

// Connect opens and pings a Redis connection for the given configuration
func Connect(ctx context.Context, redisConfig config.RedisConfig) (*redis.Client, error) {
	options := &redis.Options{
		Addr: redisConfig.Address,
		DB:   redisConfig.Database,
	}

	if redisConfig.Password != "" {
		options.Password = redisConfig.Password
	}

	client := redis.NewClient(options)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
