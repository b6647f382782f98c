package middleware

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitEnv maps environment variable names for rate limit configuration.
type RateLimitEnv struct {
	Enabled string
	RPS     string
	Burst   string
}

// RateLimitConfig limits requests per client address.
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *RateLimitConfig) Finalize(env *RateLimitEnv) error {
	if c.RPS <= 0 {
		c.RPS = 10
	}
	if c.Burst <= 0 {
		c.Burst = 20
	}
	if env == nil {
		return nil
	}
	if v := os.Getenv(env.Enabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(env.RPS); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps > 0 {
			c.RPS = rps
		}
	}
	if v := os.Getenv(env.Burst); v != "" {
		if burst, err := strconv.Atoi(v); err == nil && burst > 0 {
			c.Burst = burst
		}
	}
	return nil
}

// Merge applies non-zero values from the overlay configuration.
// An overlay can enable limiting but not disable it; use the environment for that.
func (c *RateLimitConfig) Merge(overlay *RateLimitConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.RPS > 0 {
		c.RPS = overlay.RPS
	}
	if overlay.Burst > 0 {
		c.Burst = overlay.Burst
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	idle     time.Duration
}

func (l *limiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.idle {
			delete(l.visitors, k)
		}
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimit returns middleware that rejects requests over the per-client rate
// with 429 Too Many Requests. A disabled config passes every request through.
func RateLimit(cfg *RateLimitConfig) func(http.Handler) http.Handler {
	l := &limiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
		idle:     3 * time.Minute,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}
			if !l.allow(clientKey(r), time.Now()) {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
