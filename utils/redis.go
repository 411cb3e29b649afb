package utils

import (
	"context"
	"log"
	"time"

	"bagdrop/config"

	"github.com/go-redis/redis/v8"
)

// LockClient holds short-lived capacity locks. It is the only redis client the service opens.
var LockClient *redis.Client

// InitRedis connects the lock client and fails fast when redis is unreachable.
func InitRedis() {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LockClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Lock): %v", err)
	}
}

// GetLockClient returns the Redis client used for capacity locks.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitRedis()
	}
	return LockClient
}
