// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"hotelbook/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the Redis client backing session scopes and drafts.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for session storage (DB from AppConfig).
func InitSessionCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("connect to redis (session cache): %w", err)
	}
	SessionCacheClient = client
	return nil
}

// GetSessionCacheClient returns the Redis client for session storage.
func GetSessionCacheClient() (*redis.Client, error) {
	if SessionCacheClient == nil {
		if err := InitSessionCache(); err != nil {
			return nil, err
		}
	}
	return SessionCacheClient, nil
}
