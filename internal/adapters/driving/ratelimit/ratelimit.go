// Package ratelimit provides per-client HTTP rate limiting for the
// network-facing driving adapters.
package ratelimit

import (
	"context"
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/unitconv/internal/logger"
)

const (
	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	// idleTTL is how long an unused client limiter is kept.
	idleTTL = 5 * time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter is a token bucket per client address.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

// New creates a limiter allowing perSecond requests per second per client,
// with a burst of the same size. perSecond <= 0 disables limiting.
func New(perSecond int) *Limiter {
	l := &Limiter{
		clients: make(map[string]*client),
		limit:   rate.Inf,
		burst:   0,
		now:     time.Now,
	}
	if perSecond > 0 {
		l.limit = rate.Limit(perSecond)
		l.burst = perSecond
	}
	return l
}

// Enabled reports whether requests are limited at all.
func (l *Limiter) Enabled() bool {
	return l.limit != rate.Inf
}

// Allow reports whether a request from key may proceed now.
func (l *Limiter) Allow(key string) bool {
	if !l.Enabled() {
		return true
	}
	return l.get(key).Allow()
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

// Sweep drops limiters idle for longer than the TTL and returns how many remain.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idleTTL)
	for key, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, key)
		}
	}
	return len(l.clients)
}

// SweepEvery runs Sweep on each tick until ctx is done.
func (l *Limiter) SweepEvery(ctx context.Context, interval time.Duration) {
	if !l.Enabled() {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			remaining := l.Sweep()
			logger.Debug("rate limiter tracking %d clients", remaining)
		}
	}
}

// Middleware rejects requests over the limit with 429 and a JSON body.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	if !l.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ClientKey(r)
		if !l.Allow(key) {
			logger.Debug("rate limit exceeded for %s %s", key, r.URL.Path)
			l.reject(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *Limiter) reject(w http.ResponseWriter) {
	retryAfter := int(math.Ceil(1 / float64(l.limit)))
	if retryAfter < 1 {
		retryAfter = 1
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(HeaderRetryAfter, strconv.Itoa(retryAfter))
	w.Header().Set(HeaderRateLimit, strconv.Itoa(l.burst))
	w.Header().Set(HeaderRateRemaining, "0")
	w.WriteHeader(http.StatusTooManyRequests)

	body := map[string]any{
		"code": http.StatusTooManyRequests,
		"text": "rate limit exceeded, try again later",
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("encoding rate limit response: %v", err)
	}
}

// ClientKey identifies the caller by remote IP, without the port.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
