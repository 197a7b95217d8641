package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lettrix/internal/ports"
)

// lifetimeBucket is the date slot used for the one-off free allowance.
const lifetimeBucket = "lifetime"

// QuotaPolicy decides whether a user may export another document.
// A user first consumes a lifetime allowance, then a fixed number of exports per day.
type QuotaPolicy struct {
	store        ports.QuotaStore
	lifetimeFree int
	dailyLimit   int
	logger       *slog.Logger
	now          func() time.Time
}

// NewQuotaPolicy creates a new quota policy.
func NewQuotaPolicy(store ports.QuotaStore, lifetimeFree, dailyLimit int, logger *slog.Logger) *QuotaPolicy {
	return &QuotaPolicy{
		store:        store,
		lifetimeFree: lifetimeFree,
		dailyLimit:   dailyLimit,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock overrides the time source used to pick the daily bucket.
func (q *QuotaPolicy) WithClock(now func() time.Time) *QuotaPolicy {
	q.now = now
	return q
}

// Allow consumes one export for userID and reports whether it was permitted.
func (q *QuotaPolicy) Allow(ctx context.Context, userID string) (bool, error) {
	key := "exports:" + userID

	if q.lifetimeFree > 0 {
		ok, err := q.store.IncrementIfUnderLimit(ctx, key, lifetimeBucket, q.lifetimeFree)
		if err != nil {
			return false, fmt.Errorf("lifetime quota: %w", err)
		}
		if ok {
			q.logger.Debug("export allowed by lifetime allowance", "user_id", userID)
			return true, nil
		}
	}

	today := q.now().Format("2006-01-02")
	ok, err := q.store.IncrementIfUnderLimit(ctx, key, today, q.dailyLimit)
	if err != nil {
		return false, fmt.Errorf("daily quota: %w", err)
	}

	if !ok {
		q.logger.Info("export quota exhausted", "user_id", userID, "date", today)
	}
	return ok, nil
}
