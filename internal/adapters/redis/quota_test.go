package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaStore_IncrementIfUnderLimit(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewQuotaStore(client, 48*time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := store.IncrementIfUnderLimit(ctx, "exports:u1", "2024-05-01", 3)
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d should be allowed", i+1)
	}

	ok, err := store.IncrementIfUnderLimit(ctx, "exports:u1", "2024-05-01", 3)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := store.count(ctx, "exports:u1", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	ok, err = store.IncrementIfUnderLimit(ctx, "exports:u1", "2024-05-02", 3)
	require.NoError(t, err)
	assert.True(t, ok, "a new date starts a new counter")
}

func TestQuotaStore_DatedCountersExpire(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewQuotaStore(client, time.Hour)
	ctx := context.Background()

	_, err := store.IncrementIfUnderLimit(ctx, "exports:u2", "2024-05-01", 1)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL("quota:exports:u2:2024-05-01"))

	_, err = store.IncrementIfUnderLimit(ctx, "exports:u2", "lifetime", 1)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), mr.TTL("quota:exports:u2:lifetime"))

	mr.FastForward(2 * time.Hour)

	n, err := store.count(ctx, "exports:u2", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestQuotaStore_ZeroLimitRefuses(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewQuotaStore(client, time.Hour)

	ok, err := store.IncrementIfUnderLimit(context.Background(), "exports:u3", "2024-05-01", 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuotaStore_ConcurrentCallersNeverExceedLimit(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewQuotaStore(client, time.Hour)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.IncrementIfUnderLimit(ctx, "exports:race", "2024-05-01", 5)
			if err == nil && ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, allowed)
}

func TestQuotaStore_UnavailableRedis(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewQuotaStore(client, time.Hour)
	mr.Close()

	_, err := store.IncrementIfUnderLimit(context.Background(), "exports:u4", "2024-05-01", 1)
	assert.Error(t, err)
}
