package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimiter caps how many writes one user may send per window. Counts
// live in the cache provider when there is one; otherwise each user gets an
// in-process token bucket.
type RateLimiter struct {
	cache  providers.CacheProvider
	limit  int
	window time.Duration
	local  *localRateLimiter
}

// NewRateLimiter creates a rate limiter allowing limit writes per window
func NewRateLimiter(cache providers.CacheProvider, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		cache:  cache,
		limit:  limit,
		window: window,
		local:  newLocalRateLimiter(),
	}
}

// Limit wraps a write handler behind RequireAuth and counts callers by
// user id. A request that reaches it without claims is rejected.
func (l *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	if l == nil || l.limit <= 0 {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, apperrors.NewUnauthorizedError("authentication credentials were not provided"))
			return
		}

		key := "ratelimit:write:user:" + claims.Subject
		allowed, retryAfter := l.allow(r.Context(), key)
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(retryAfter)))
			writeError(w, apperrors.NewRateLimitedError("rate limit exceeded"))
			return
		}
		next(w, r)
	}
}

type rateLimitState struct {
	Count int `json:"count"`
}

func (l *RateLimiter) allow(ctx context.Context, key string) (bool, time.Duration) {
	if l.cache == nil {
		return l.local.allow(key, l.limit, l.window)
	}

	state := rateLimitState{}
	if data, err := l.cache.Get(ctx, key); err == nil {
		_ = json.Unmarshal(data, &state)
	}

	if state.Count >= l.limit {
		return false, l.window
	}

	state.Count++
	data, _ := json.Marshal(state)
	_ = l.cache.Set(ctx, key, data, int(l.window.Seconds()))
	return true, l.window
}

// localRateLimiter keeps one token bucket per caller. A bucket refills
// completely within one window, so buckets idle for longer than that are
// dropped.
type localRateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*localBucket
	lastSweep time.Time
	now       func() time.Time
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLocalRateLimiter() *localRateLimiter {
	return &localRateLimiter{
		buckets: make(map[string]*localBucket),
		now:     time.Now,
	}
}

func (l *localRateLimiter) allow(key string, limit int, window time.Duration) (bool, time.Duration) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now, window)

	bucket, ok := l.buckets[key]
	if !ok {
		bucket = &localBucket{limiter: rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)}
		l.buckets[key] = bucket
	}
	bucket.lastSeen = now

	reservation := bucket.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (l *localRateLimiter) sweep(now time.Time, window time.Duration) {
	if now.Sub(l.lastSweep) < window {
		return
	}
	for key, bucket := range l.buckets {
		if now.Sub(bucket.lastSeen) > window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

func retryAfterSeconds(d time.Duration) int {
	seconds := int(d.Round(time.Second) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}
