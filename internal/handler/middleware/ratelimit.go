package middleware

import (
	"net/http"
	"sync"
	"time"

	"pet-adoption/internal/handler/httperr"
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/flash"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limited")

// RateLimiter throttles credential endpoints per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	every    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*visitor),
		every:    rate.Every(cfg.LoginInterval),
		burst:    cfg.LoginBurst,
		ttl:      10 * time.Minute,
		now:      time.Now,
	}
}

// Limit only applies to POSTs so the forms themselves stay reachable.
func (r *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if !r.allow(c.ClientIP()) {
			back := c.Request.URL.Path
			httperr.AbortWithRedirect(c, back, errRateLimited, flash.LevelWarning, "Too many attempts. Please wait and try again.")
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	v, ok := r.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r.every, r.burst)}
		r.limiters[key] = v
	}
	v.lastSeen = now
	r.sweep(now)

	return v.limiter.AllowN(now, 1)
}

// sweep drops visitors idle for longer than ttl. Caller holds mu.
func (r *RateLimiter) sweep(now time.Time) {
	for k, v := range r.limiters {
		if now.Sub(v.lastSeen) > r.ttl {
			delete(r.limiters, k)
		}
	}
}
