package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrementIfUnder bumps KEYS[1] when its value is below ARGV[1] and applies
// ARGV[2] milliseconds of expiry when positive. Returns 1 when incremented.
var incrementIfUnder = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current >= tonumber(ARGV[1]) then
  return 0
end
redis.call('INCR', KEYS[1])
local ttl = tonumber(ARGV[2])
if ttl > 0 then
  redis.call('PEXPIRE', KEYS[1], ttl)
end
return 1
`)

// lifetimeDate marks counters that never expire.
const lifetimeDate = "lifetime"

// QuotaStore implements ports.QuotaStore using Redis.
type QuotaStore struct {
	client *Client
	ttl    time.Duration
}

// NewQuotaStore creates a quota store. Dated counters expire after ttl.
func NewQuotaStore(client *Client, ttl time.Duration) *QuotaStore {
	return &QuotaStore{
		client: client,
		ttl:    ttl,
	}
}

// IncrementIfUnderLimit atomically increments the counter for key on date
// when it is below limit.
func (s *QuotaStore) IncrementIfUnderLimit(ctx context.Context, key, date string, limit int) (bool, error) {
	if limit <= 0 {
		return false, nil
	}

	redisKey := fmt.Sprintf(KeyPatternQuota, key, date)

	ttl := ttlOrZero(s.ttl)
	if date == lifetimeDate {
		ttl = 0
	}

	n, err := incrementIfUnder.Run(ctx, s.client.Native(), []string{redisKey}, limit, ttl).Int()
	if err != nil {
		return false, fmt.Errorf("increment quota %s: %w", redisKey, err)
	}

	return n == 1, nil
}
