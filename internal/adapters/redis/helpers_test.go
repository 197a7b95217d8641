package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// newTestClient starts an in-process Redis and returns a client bound to it.
func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	client := NewFromNative(rdb)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

// count returns the current counter value for key on date.
func (s *QuotaStore) count(ctx context.Context, key, date string) (int, error) {
	n, err := s.client.Native().Get(ctx, fmt.Sprintf(KeyPatternQuota, key, date)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
