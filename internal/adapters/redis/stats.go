package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// StatsStore implements ports.StatsStore as one Redis hash per day.
type StatsStore struct {
	client *Client
	ttl    time.Duration
}

// NewStatsStore creates a stats store. Daily hashes expire after ttl when positive.
func NewStatsStore(client *Client, ttl time.Duration) *StatsStore {
	return &StatsStore{
		client: client,
		ttl:    ttl,
	}
}

// Incr increments the named counter for date.
func (s *StatsStore) Incr(ctx context.Context, date, name string) error {
	key := fmt.Sprintf(KeyPatternStats, date)

	pipe := s.client.Native().TxPipeline()
	pipe.HIncrBy(ctx, key, name, 1)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("increment stat %s: %w", name, err)
	}
	return nil
}

// Counts returns every counter recorded for date.
func (s *StatsStore) Counts(ctx context.Context, date string) (map[string]int64, error) {
	raw, err := s.client.Native().HGetAll(ctx, fmt.Sprintf(KeyPatternStats, date)).Result()
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	counts := make(map[string]int64, len(raw))
	for name, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse stat %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}
