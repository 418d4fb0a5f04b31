package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/pempek-storefront/cmd/config"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// New connects the shared Redis client used by the catalog cache. With Redis
// disabled it leaves the client nil and the cache degrades to a no-op.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}
	if !cfg.Redis.Enabled {
		return nil
	}

	addr := cfg.GetRedisAddr()
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	client = c
	return nil
}

func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
