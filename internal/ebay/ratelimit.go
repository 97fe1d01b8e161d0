package ebay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily API call limit has been exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// Usage is a point-in-time view of the limiter's daily window.
type Usage struct {
	DailyLimit int64
	DailyUsed  int64
	Remaining  int64
	ResetAt    time.Time
}

// RateLimiter is shared by every eBay client in the process. It combines a
// token bucket (per-second rate) with a rolling 24-hour call budget.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	nowFunc  func() time.Time

	mu      sync.Mutex
	used    int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size, and daily limit. The daily window resets 24 hours after it
// opens.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait reserves one call from the daily budget and then blocks until the
// token bucket admits it or ctx is canceled. A canceled wait returns the
// reservation.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.reserve(); err != nil {
		return err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		r.release()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

func (r *RateLimiter) reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollLocked()
	if r.used >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.used, r.maxDaily)
	}
	r.used++
	return nil
}

func (r *RateLimiter) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used > 0 {
		r.used--
	}
}

func (r *RateLimiter) rollLocked() {
	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.used = 0
		r.resetAt = now.Add(24 * time.Hour)
	}
}

// DailyCount returns the current daily call count.
func (r *RateLimiter) DailyCount() int64 {
	return r.Snapshot().DailyUsed
}

// MaxDaily returns the configured daily call limit.
func (r *RateLimiter) MaxDaily() int64 {
	return r.maxDaily
}

// Remaining returns the number of calls left in the current window.
func (r *RateLimiter) Remaining() int64 {
	return r.Snapshot().Remaining
}

// ResetAt returns when the current window expires.
func (r *RateLimiter) ResetAt() time.Time {
	return r.Snapshot().ResetAt
}

// Snapshot returns the daily window state, rolling it first if expired.
func (r *RateLimiter) Snapshot() Usage {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollLocked()
	return Usage{
		DailyLimit: r.maxDaily,
		DailyUsed:  r.used,
		Remaining:  max(r.maxDaily-r.used, 0),
		ResetAt:    r.resetAt,
	}
}
