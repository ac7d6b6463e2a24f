package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"book-agent/pkg/response"
)

const (
	limiterCacheSize = 1024
	limiterCacheTTL  = 10 * time.Minute
)

// RateLimit throttles requests per client IP with a token bucket. Limiters
// are kept in an expiring cache so idle clients do not accumulate.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.cfg.PerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := lru.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL)
	perSecond := rate.Limit(float64(m.cfg.PerMinute) / 60.0)

	return func(c *gin.Context) {
		key := c.ClientIP()
		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(perSecond, m.cfg.Burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s %s from %s", c.Request.Method, c.Request.URL.Path, key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
