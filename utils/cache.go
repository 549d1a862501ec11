// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"bookflow/config"

	"github.com/go-redis/redis/v8"
)

// WizardCacheClient is the Redis client backing the wizard step store.
var WizardCacheClient *redis.Client

// InitWizardCache initializes the Redis client for wizard step persistence.
func InitWizardCache() {
	WizardCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWizardDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := WizardCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Wizard Cache): %v", err)
	}
}

// GetWizardCacheClient returns the Redis client for wizard step persistence.
func GetWizardCacheClient() *redis.Client {
	if WizardCacheClient == nil {
		InitWizardCache()
	}
	return WizardCacheClient
}
