package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/utils"
	"golang.org/x/time/rate"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Limit   rate.Limit    // Sustained requests per second
	Burst   int           // Requests allowed at once
	IdleTTL time.Duration // Forget limiters of clients idle this long
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps a token bucket per client IP and route
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	config    RateLimiterConfig
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates an in-process rate limiter
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.IdleTTL == 0 {
		config.IdleTTL = 10 * time.Minute
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		config:   config,
		now:      time.Now,
	}
}

// Middleware rejects clients over their budget with 429
func (r *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := r.getLimiter(c.RealIP() + "|" + c.Path())

			if !limiter.Allow() {
				retryAfter := time.Second
				if r.config.Limit > 0 {
					retryAfter = time.Duration(float64(time.Second) / float64(r.config.Limit))
				}
				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(r.config.Burst))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds()+0.5)))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Too many requests. Please slow down.")
			}

			return next(c)
		}
	}
}

func (r *RateLimiter) getLimiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) > r.config.IdleTTL {
		for k, v := range r.visitors {
			if now.Sub(v.lastSeen) > r.config.IdleTTL {
				delete(r.visitors, k)
			}
		}
		r.lastSweep = now
	}

	v, exists := r.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(r.config.Limit, r.config.Burst)}
		r.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// AuthRateLimiter limits sign-in and sign-up attempts per IP
func AuthRateLimiter() echo.MiddlewareFunc {
	return NewRateLimiter(RateLimiterConfig{
		Limit: rate.Every(2 * time.Second),
		Burst: 5,
	}).Middleware()
}
