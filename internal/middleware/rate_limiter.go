package middleware

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"budget-engine/internal/errors"
	"budget-engine/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitConfig configures the per-client request limiter
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	// VisitorTTL is how long an idle client keeps its bucket
	VisitorTTL time.Duration
	// Skipper bypasses the limiter, e.g. for health probes
	Skipper func(c echo.Context) bool
}

// DefaultRateLimitConfig returns the limits used when none are configured
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 5,
		Burst:             10,
		VisitorTTL:        3 * time.Minute,
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitorTable struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	config    RateLimitConfig
	lastSweep time.Time
	now       func() time.Time
}

func newVisitorTable(config RateLimitConfig, now func() time.Time) *visitorTable {
	return &visitorTable{
		visitors:  make(map[string]*visitor),
		config:    config,
		lastSweep: now(),
		now:       now,
	}
}

// RateLimiter limits requests per client IP with a token bucket
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterWithConfig(DefaultRateLimitConfig())
}

// RateLimiterWithConfig creates a rate limiter with custom configuration
func RateLimiterWithConfig(config RateLimitConfig) echo.MiddlewareFunc {
	defaults := DefaultRateLimitConfig()
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if config.Burst <= 0 {
		config.Burst = defaults.Burst
	}
	if config.VisitorTTL <= 0 {
		config.VisitorTTL = defaults.VisitorTTL
	}

	table := newVisitorTable(config, time.Now)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper != nil && config.Skipper(c) {
				return next(c)
			}

			if !table.allow(getIP(c)) {
				retryAfter := int(math.Ceil(1 / config.RequestsPerSecond))
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

func (t *visitorTable) allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if now.Sub(t.lastSweep) > t.config.VisitorTTL {
		t.sweep(now)
	}

	v, exists := t.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(t.config.RequestsPerSecond), t.config.Burst)}
		t.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// sweep drops idle visitors. Callers hold t.mu.
func (t *visitorTable) sweep(now time.Time) {
	for ip, v := range t.visitors {
		if now.Sub(v.lastSeen) > t.config.VisitorTTL {
			delete(t.visitors, ip)
		}
	}
	t.lastSweep = now
}

func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}

// SkipProbes skips the limiter for health and metrics scrapes
func SkipProbes(c echo.Context) bool {
	switch c.Path() {
	case "/health", "/metrics":
		return true
	default:
		return false
	}
}
