package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// loginLimiter tracks failed PIN logins per account so a short PIN cannot be
// brute-forced through the login endpoint. Entries older than the window are
// pruned on every touch.
type loginLimiter struct {
	mu       sync.Mutex
	failures map[string][]time.Time
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{
		failures: make(map[string][]time.Time),
	}
}

func (limiter *loginLimiter) tooManyRecent(key string, now time.Time, limit int, window time.Duration) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	recent := limiter.pruneLocked(key, now, window)
	return len(recent) >= limit
}

func (limiter *loginLimiter) addFailure(key string, now time.Time, window time.Duration) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	recent := limiter.pruneLocked(key, now, window)
	recent = append(recent, now)
	limiter.failures[key] = recent
}

func (limiter *loginLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

func (limiter *loginLimiter) pruneLocked(key string, now time.Time, window time.Duration) []time.Time {
	stamps := limiter.failures[key]
	if len(stamps) == 0 {
		return []time.Time{}
	}

	cutoff := now.Add(-window)
	recent := make([]time.Time, 0, len(stamps))
	for _, stamp := range stamps {
		if stamp.After(cutoff) {
			recent = append(recent, stamp)
		}
	}

	if len(recent) == 0 {
		delete(limiter.failures, key)
		return []time.Time{}
	}

	limiter.failures[key] = recent
	return recent
}

// loginLimiterKey identifies the account under attack rather than the caller:
// PIN guessing targets one email, so that is what gets throttled.
func loginLimiterKey(c *fiber.Ctx, email string) string {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		key = strings.TrimSpace(c.IP())
	}
	if key == "" {
		return "unknown"
	}
	return key
}
