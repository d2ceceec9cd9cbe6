package redis

import (
	"context"
	"fmt"
	"time"

	"brandtracker-api/config"

	goredis "github.com/redis/go-redis/v9"
)

// defaultConnectTimeout bounds the initial connection ping.
const defaultConnectTimeout = 5 * time.Second

// Connect initializes a Redis client and verifies the connection.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		MinIdleConns: cfg.MinIdleConns,
		PoolSize:     cfg.PoolSize,
		PoolTimeout:  cfg.PoolTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// Disconnect closes the Redis connection.
func Disconnect(client *goredis.Client) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
