// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"bookit/config"

	"github.com/go-redis/redis/v8"
)

var (
	// StateClient holds transient navigation state (checkout and confirmation records).
	StateClient *redis.Client
	// CacheClient is the catalog read-through cache client.
	CacheClient *redis.Client
)

// InitStateStore initializes the Redis client for transient navigation state.
func InitStateStore() {
	StateClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StateClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (State): %v", err)
	}
}

// GetStateClient returns the transient state client.
func GetStateClient() *redis.Client {
	if StateClient == nil {
		InitStateStore()
	}
	return StateClient
}

// InitCache initializes the Redis client for catalog caching.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the catalog cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
