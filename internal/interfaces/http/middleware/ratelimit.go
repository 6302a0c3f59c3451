package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/textile/backend/internal/interfaces/http/dto"
)

// RateLimiterConfig holds rate limiter configuration
type RateLimiterConfig struct {
	// Requests per window per client
	Limit int
	// Window duration
	Window time.Duration
	// KeyFunc extracts the client key from the request; defaults to ClientIP
	KeyFunc func(c *gin.Context) string
	// CleanupInterval controls how often stale buckets are evicted
	CleanupInterval time.Duration
}

// DefaultRateLimiterConfig returns a config of 100 requests per minute per IP
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Limit:           100,
		Window:          time.Minute,
		KeyFunc:         func(c *gin.Context) string { return c.ClientIP() },
		CleanupInterval: 5 * time.Minute,
	}
}

type tokenBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is an in-memory token bucket limiter keyed per client.
// Buckets refill continuously at Limit/Window.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	limit   float64
	rate    float64 // tokens per second
	window  time.Duration
	keyFunc func(c *gin.Context) string
	done    chan struct{}
}

// NewRateLimiter creates a rate limiter and starts its cleanup goroutine
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.Limit <= 0 {
		cfg.Limit = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}

	rl := &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		limit:   float64(cfg.Limit),
		rate:    float64(cfg.Limit) / cfg.Window.Seconds(),
		window:  cfg.Window,
		keyFunc: cfg.KeyFunc,
		done:    make(chan struct{}),
	}
	go rl.cleanupLoop(cfg.CleanupInterval)
	return rl
}

// Allow reports whether the client identified by key may proceed, and the
// number of remaining tokens after this request.
func (rl *RateLimiter) Allow(key string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &tokenBucket{tokens: rl.limit, lastSeen: now}
		rl.buckets[key] = b
	}

	elapsed := now.Sub(b.lastSeen).Seconds()
	b.tokens += elapsed * rl.rate
	if b.tokens > rl.limit {
		b.tokens = rl.limit
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false, 0
	}
	b.tokens--
	return true, int(b.tokens)
}

// Stop terminates the cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.done:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := time.Now().Add(-2 * rl.window)
	for key, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}

// Middleware returns the gin handler enforcing the rate limit
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.keyFunc(c)
		allowed, remaining := rl.Allow(key)

		c.Writer.Header().Set("X-RateLimit-Limit", strconv.Itoa(int(rl.limit)))
		c.Writer.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Writer.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.ErrCodeRateLimited,
				"too many requests",
			))
			return
		}
		c.Next()
	}
}
