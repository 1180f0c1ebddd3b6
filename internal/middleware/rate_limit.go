package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"tecnofit-assistant/config"
	"tecnofit-assistant/pkg/response"
)

const (
	limiterCacheSize = 4096
	limiterCacheTTL  = 10 * time.Minute
)

// limiterCache holds one token bucket per client IP. Idle buckets are
// evicted; an evicted client simply starts with a full bucket again.
type limiterCache struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *rate.Limiter]
	cfg   config.RateLimitConfig
}

func newLimiterCache(cfg config.RateLimitConfig) *limiterCache {
	return &limiterCache{
		cache: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL),
		cfg:   cfg,
	}
}

func (lc *limiterCache) get(key string) *rate.Limiter {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if l, ok := lc.cache.Get(key); ok {
		return l
	}
	l := rate.NewLimiter(rate.Limit(lc.cfg.RPS), lc.cfg.Burst)
	lc.cache.Add(key, l)
	return l
}

// RateLimit enforces a per-client-IP request rate on the routes it wraps.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.config.RateLimit.Enabled {
			c.Next()
			return
		}

		if !m.limiters.get(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
