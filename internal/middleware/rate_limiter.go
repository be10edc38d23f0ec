package middleware

import (
	"sync"
	"time"

	"spender/internal/errors"
	"spender/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// Defaults sized for a single mobile client logging expenses; insight
	// fetches are the heaviest call and stay well under this.
	defaultRequestsPerSecond = 5
	defaultBurstSize         = 10

	clientIdleTimeout = 3 * time.Minute
	cleanupInterval   = time.Minute
)

type rateLimitedClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientRegistry tracks one token bucket per client IP
type clientRegistry struct {
	mu      sync.Mutex
	clients map[string]*rateLimitedClient
	rps     rate.Limit
	burst   int
}

func newClientRegistry(rps, burst int) *clientRegistry {
	return &clientRegistry{
		clients: make(map[string]*rateLimitedClient),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

func (r *clientRegistry) limiterFor(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, exists := r.clients[ip]
	if !exists {
		client = &rateLimitedClient{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

func (r *clientRegistry) evictIdle() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ip, client := range r.clients {
		if time.Since(client.lastSeen) > clientIdleTimeout {
			delete(r.clients, ip)
		}
	}
}

func (r *clientRegistry) cleanupLoop() {
	for {
		time.Sleep(cleanupInterval)
		r.evictIdle()
	}
}

// RateLimiter creates a per-IP rate limiting middleware with default limits
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterWithConfig(defaultRequestsPerSecond, defaultBurstSize)
}

// RateLimiterWithConfig creates a per-IP rate limiting middleware. Each call
// owns its own client registry, so stacked instances do not share buckets.
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	registry := newClientRegistry(rps, burst)
	go registry.cleanupLoop()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !registry.limiterFor(clientIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}
