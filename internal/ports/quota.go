package ports

import "context"

// QuotaStore is an atomic per-key, per-date counter.
type QuotaStore interface {
	// IncrementIfUnderLimit increments the counter for key on date when its current
	// value is below limit. It reports whether the increment happened.
	IncrementIfUnderLimit(ctx context.Context, key, date string, limit int) (bool, error)
}

// StatsStore records aggregate daily counters.
type StatsStore interface {
	// Incr increments the named counter for date.
	Incr(ctx context.Context, date, name string) error

	// Counts returns every counter recorded for date.
	Counts(ctx context.Context, date string) (map[string]int64, error)
}
