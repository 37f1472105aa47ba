package cache

import (
	"context"
	"time"

	"team-scheduler/core/logger"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis and verifies the connection. Callers may pass
// the returned client around; a nil client disables Redis-backed features.
func InitRedis(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis:InitRedis", err)
		return nil, err
	}

	logger.Info("Redis connected", "addr", addr)
	return client, nil
}
