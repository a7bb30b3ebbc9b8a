package middleware

import (
	"net/http"
	"sync"
	"time"

	"relatorio_ronda/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const MsgLimiteExcedido = "Limite de requisições excedido"

// RateLimiter mantém um limiter por IP com expiração simples.
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	mu     sync.Mutex
	store  map[string]*limiterEntry
	maxAge time.Duration
}

type limiterEntry struct {
	limiter *rate.Limiter
	updated time.Time
}

func NewRateLimiter(reqPerSec float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit:  rate.Limit(reqPerSec),
		burst:  burst,
		store:  make(map[string]*limiterEntry),
		maxAge: 10 * time.Minute,
	}
}

func (r *RateLimiter) get(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if entry, ok := r.store[key]; ok {
		entry.updated = now
		return entry.limiter
	}

	lim := rate.NewLimiter(r.limit, r.burst)
	r.store[key] = &limiterEntry{limiter: lim, updated: now}

	for k, entry := range r.store {
		if now.Sub(entry.updated) > r.maxAge {
			delete(r.store, k)
		}
	}
	return lim
}

// IPRateLimit keys the limiter by client IP. A limiter built with a
// non-positive rate lets every request through.
func IPRateLimit(r *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.limit <= 0 {
			c.Next()
			return
		}
		if !r.get(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			appErr := pkg.NewDomainErrorSimple("RATE_LIMIT", MsgLimiteExcedido, http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
