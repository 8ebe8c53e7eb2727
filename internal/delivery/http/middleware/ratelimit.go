package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"eventregistration/internal/delivery/http/helpers"
)

// idleLimiterTTL is how long an unused per-client limiter is kept.
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
	lastScan time.Time
}

// NewRateLimiter allows perMinute requests per client IP with a burst of the same size.
// A non-positive perMinute returns nil, which Middleware treats as disabled.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		return nil
	}
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(float64(perMinute) / 60),
		burst:   perMinute,
		now:     time.Now,
	}
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastScan) > idleLimiterTTL {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > idleLimiterTTL {
				delete(l.clients, k)
			}
		}
		l.lastScan = now
	}

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Middleware rejects requests over the client's budget with 429 RATE_LIMITED.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	// Seconds until one token is refilled.
	retryAfter := strconv.Itoa(int(math.Ceil(1 / float64(l.limit))))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r)) {
			w.Header().Set("Retry-After", retryAfter)
			helpers.WriteJSONError(w, http.StatusTooManyRequests, helpers.ErrCodeRateLimited, "Too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
