package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/textile/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const defaultCleanupInterval = 30 * time.Second

// Cache stores serialized values under string keys with a TTL.
// Used for the dashboard report, which tolerates slightly stale data.
type Cache interface {
	// Get returns the cached bytes, or nil without error on a miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}

// RedisCache implements Cache on a Redis client
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

// NewRedisClient opens a Redis connection from config and pings it
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisCache creates a cache on an existing Redis client
func NewRedisCache(client *redis.Client, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		client:    client,
		keyPrefix: "cache:",
		logger:    logger,
	}
}

// Get retrieves the cached bytes, or nil without error on a miss
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get failed: %w", err)
	}
	return data, nil
}

// Set stores a value with the given TTL
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}
	return nil
}

// Delete removes a key
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("cache delete failed: %w", err)
	}
	return nil
}

var _ Cache = (*RedisCache)(nil)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e *memoryEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// InMemoryCache is the single-instance fallback when Redis is not configured
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	stopCh  chan struct{}
}

// NewInMemoryCache creates an in-memory cache with background expiry cleanup
func NewInMemoryCache() *InMemoryCache {
	c := &InMemoryCache{
		entries: make(map[string]*memoryEntry),
		stopCh:  make(chan struct{}),
	}
	go c.cleanupExpired()
	return c
}

// Get retrieves the cached bytes, or nil without error on a miss
func (c *InMemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || entry.isExpired() {
		return nil, nil
	}
	return entry.value, nil
}

// Set stores a value with the given TTL
func (c *InMemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = &memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Delete removes a key
func (c *InMemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Close stops the cleanup goroutine
func (c *InMemoryCache) Close() {
	close(c.stopCh)
}

func (c *InMemoryCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			for key, entry := range c.entries {
				if entry.isExpired() {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

var _ Cache = (*InMemoryCache)(nil)
