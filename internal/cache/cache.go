package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	Client *redis.Client
}

func New(ctx context.Context, addr string, password string, db int) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping credential store: %w", err)
	}

	slog.Info("credential store connected", "addr", addr, "db", db)
	return &Cache{Client: client}, nil
}

func (c *Cache) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}

func (c *Cache) Health(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}
