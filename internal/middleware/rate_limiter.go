package middleware

import (
	"net/http"
	"sync"
	"time"

	"feriapos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Sliding-window per-IP limiter. Each call to NewRateLimiter owns its map, so
// the login limiter and the general limiter never share counters.

type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type rateLimiter struct {
	limit   int
	window  time.Duration
	mensaje string

	mu        sync.Mutex
	entries   map[string]*rateEntry
	lastPurge time.Time
}

const purgeInterval = 5 * time.Minute

func newRateLimiter(limit int, window time.Duration, mensaje string) *rateLimiter {
	return &rateLimiter{
		limit:     limit,
		window:    window,
		mensaje:   mensaje,
		entries:   make(map[string]*rateEntry),
		lastPurge: time.Now(),
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	rl := newRateLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.")
	return rl.handler()
}

// RateLimiter is the general-purpose per-IP limiter applied to the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	rl := newRateLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.")
	return rl.handler()
}

func (rl *rateLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rl.mu.Lock()
		if now := time.Now(); now.Sub(rl.lastPurge) >= purgeInterval {
			rl.purgeLocked(now)
			rl.lastPurge = now
		}
		entry, exists := rl.entries[ip]
		if !exists {
			entry = &rateEntry{}
			rl.entries[ip] = entry
		}
		rl.mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(rl.window)
		}

		entry.count++
		if entry.count > rl.limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(rl.mensaje))
			return
		}
		c.Next()
	}
}

// purgeLocked drops expired IPs so the map doesn't grow with one-off clients.
// Runs inline on the request path at most once per purgeInterval, so the
// limiter needs no background goroutine and no teardown. Caller holds rl.mu.
func (rl *rateLimiter) purgeLocked(now time.Time) {
	purged := 0
	for ip, entry := range rl.entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(rl.entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	if purged > 0 {
		log.Debug().
			Int("purged", purged).
			Int("remaining", len(rl.entries)).
			Msg("rate limiter entries purged")
	}
}
