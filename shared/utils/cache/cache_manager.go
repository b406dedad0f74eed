package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"vendorcheck-backend/shared/config"
)

// CacheManager is the transient TTL key-value store backing OTP state,
// pending registrations and resend cooldowns.
type CacheManager struct {
	client *redis.Client
	ctx    context.Context
}

var globalCacheManager *CacheManager

// InitCacheManager initializes the global cache manager
func InitCacheManager() error {
	cfg := config.GetConfig()

	redisDB, err := strconv.Atoi(cfg.RedisDB)
	if err != nil {
		log.Printf("❌ Invalid Redis DB number: %s, using default 0", cfg.RedisDB)
		redisDB = 0
	}

	// Create Redis client
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       redisDB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	globalCacheManager = &CacheManager{
		client: client,
		ctx:    ctx,
	}

	log.Printf("✅ Redis Cache Manager initialized successfully - %s:%s DB:%d",
		cfg.RedisHost, cfg.RedisPort, redisDB)

	return nil
}

// GetCacheManager returns the global cache manager instance
func GetCacheManager() *CacheManager {
	if globalCacheManager == nil {
		if err := InitCacheManager(); err != nil {
			log.Printf("❌ Failed to initialize cache manager: %v", err)
			return nil
		}
	}
	return globalCacheManager
}

// Put stores a value under key with the given TTL.
func (cm *CacheManager) Put(key string, value []byte, ttl time.Duration) error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	if err := cm.client.Set(cm.ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %v", key, err)
	}
	return nil
}

// Get reads a value by key. The second return is false on a miss (missing
// or expired key).
func (cm *CacheManager) Get(key string) ([]byte, bool, error) {
	if cm == nil || cm.client == nil {
		return nil, false, fmt.Errorf("cache manager not initialized")
	}

	result, err := cm.client.Get(cm.ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cache key %s: %v", key, err)
	}
	return result, true, nil
}

// Forget removes a key. Removing an absent key is not an error.
func (cm *CacheManager) Forget(key string) error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	if err := cm.client.Del(cm.ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key %s: %v", key, err)
	}
	return nil
}

// PutJSON marshals a value and stores it under key with the given TTL.
func (cm *CacheManager) PutJSON(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %v", err)
	}
	return cm.Put(key, data, ttl)
}

// GetJSON reads a value by key and unmarshals it into dest. The first
// return is false on a miss.
func (cm *CacheManager) GetJSON(key string, dest interface{}) (bool, error) {
	data, found, err := cm.Get(key)
	if err != nil || !found {
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data: %v", err)
	}
	return true, nil
}

// TestConnection tests the Redis connection
func (cm *CacheManager) TestConnection() error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	testKey := "test:connection"
	testValue := []byte("connection_test_ok")

	if err := cm.Put(testKey, testValue, time.Minute); err != nil {
		return err
	}

	result, found, err := cm.Get(testKey)
	if err != nil {
		return err
	}
	if !found || string(result) != string(testValue) {
		return fmt.Errorf("test value mismatch: expected %s, got %s", testValue, result)
	}

	if err := cm.Forget(testKey); err != nil {
		return err
	}

	log.Println("✅ Redis connection test passed")
	return nil
}

// Close closes the cache manager connection
func (cm *CacheManager) Close() error {
	if cm != nil && cm.client != nil {
		return cm.client.Close()
	}
	return nil
}
