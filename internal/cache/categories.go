// Package cache provides a Redis-backed cache for the category list.
// The cache is best-effort: any Redis error logs and falls through to
// the database, so the API keeps working with Redis down.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const categoriesKey = "bookstore:categories"

// DefaultTTL is how long the category list stays cached. Categories
// change only on admin writes, which also invalidate the key.
const DefaultTTL = 5 * time.Minute

// Connect creates a Redis client and verifies the connection with a ping.
func Connect(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// CategoryCache caches the distinct category list in Redis.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCategoryCache creates a cache backed by the given client.
func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &CategoryCache{client: client, ttl: ttl}
}

// Get retrieves the cached category list. The second return is false on
// a miss or any cache error.
func (cc *CategoryCache) Get(ctx context.Context) ([]string, bool) {
	val, err := cc.client.Get(ctx, categoriesKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("category cache get error: %v", err)
		return nil, false
	}

	var categories []string
	if err := json.Unmarshal(val, &categories); err != nil {
		log.Printf("category cache decode error: %v", err)
		return nil, false
	}
	return categories, true
}

// Set stores the category list with the configured TTL.
func (cc *CategoryCache) Set(ctx context.Context, categories []string) {
	val, err := json.Marshal(categories)
	if err != nil {
		log.Printf("category cache encode error: %v", err)
		return
	}
	if err := cc.client.Set(ctx, categoriesKey, val, cc.ttl).Err(); err != nil {
		log.Printf("category cache set error: %v", err)
	}
}

// Invalidate drops the cached list; admin mutations call this.
func (cc *CategoryCache) Invalidate(ctx context.Context) {
	if err := cc.client.Del(ctx, categoriesKey).Err(); err != nil {
		log.Printf("category cache invalidate error: %v", err)
	}
}
