package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9" // go-redis v9 client
)

// NewRedisClient builds a Redis client from REDIS_ADDR / REDIS_PASSWORD /
// REDIS_DB and verifies connectivity with a short ping.  The gateway uses
// Redis for response caching and rate limiting; if Redis is unreachable we
// fail fast rather than serve with silently degraded middleware.
func NewRedisClient() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       atoi(getenv("REDIS_DB", "0")),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis connection failed: %v", err)
	}
	return client
}
