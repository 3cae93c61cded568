package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an unused bucket is kept before it is dropped.
const limiterIdleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key, usually a client IP or a
// user id. Idle buckets are swept lazily on access.
type KeyedRateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

func NewKeyedRateLimiter(limit rate.Limit, burst int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// Allow takes one token from key's bucket.
func (l *KeyedRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for k, b := range l.buckets {
			if now.Sub(b.lastSeen) > limiterIdleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

func (l *KeyedRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// rateLimit rejects with 429 when keyOf's bucket is empty. An empty key is
// not limited.
func rateLimit(l *KeyedRateLimiter, keyOf func(*gin.Context) string, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := keyOf(c); key != "" && !l.Allow(key) {
			response.Error(c, http.StatusTooManyRequests, apperror.CodeTooManyRequests, message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func RateLimitByIP(limit rate.Limit, burst int) gin.HandlerFunc {
	return rateLimit(NewKeyedRateLimiter(limit, burst), (*gin.Context).ClientIP, "Too many requests from this IP")
}

// RateLimitByUser limits authenticated callers; anonymous requests pass through.
func RateLimitByUser(limit rate.Limit, burst int) gin.HandlerFunc {
	userID := func(c *gin.Context) string { return c.GetString("user_id") }
	return rateLimit(NewKeyedRateLimiter(limit, burst), userID, "Too many requests from this user")
}
