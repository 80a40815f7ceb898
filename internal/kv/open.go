package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"civisafe/internal/config"
	"civisafe/internal/db"
)

// Open builds the store selected by cfg.Driver. The returned close function
// releases the backend and is safe to call for the memory driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStore(), func() error { return nil }, nil
	case config.DriverSQLite, "":
		d, err := db.Open(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite %s: %w", cfg.Path, err)
		}
		s := NewSQLiteStore(d)
		return s, s.Close, nil
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		s := NewRedisStore(client, cfg.RedisPrefix)
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
