package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"ggenius-website/internal/delivery/http/response"
	"ggenius-website/internal/domain"
	"ggenius-website/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window. Zero disables the limiter.
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Clock, for tests (default: time.Now)
	Now func() time.Time
}

// ContactRateLimitConfig limits contact form submissions per client IP.
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:  limit,
		Window: window,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// rateLimitEntry tracks request count for a key within one window
type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// rateLimitStore is a fixed-window counter. Expired entries are swept at
// most once per window while handling requests.
type rateLimitStore struct {
	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	nextSweep time.Time
}

func (s *rateLimitStore) hit(key string, window time.Duration, now time.Time) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.After(s.nextSweep) {
		for k, e := range s.entries {
			if now.After(e.resetAt) {
				delete(s.entries, k)
			}
		}
		s.nextSweep = now.Add(window)
	}

	entry, ok := s.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &rateLimitEntry{resetAt: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++

	return entry.count, entry.resetAt
}

// RateLimitMiddleware creates a rate limiting middleware with the given config.
// Counters live in process memory, so each instance limits independently.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.Limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	store := &rateLimitStore{entries: make(map[string]*rateLimitEntry)}

	return func(c *gin.Context) {
		now := config.Now()
		count, resetAt := store.hit(config.KeyFunc(c), config.Window, now)

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(resetAt.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.WarnContext(c.Request.Context(), "Rate limit exceeded",
				"ip", c.ClientIP(), "path", c.FullPath())

			response.Error(c, http.StatusTooManyRequests, domain.ErrTooManyRequests.Error(), nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
