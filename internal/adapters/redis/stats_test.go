package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsStore_IncrAndCounts(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewStatsStore(client, 30*24*time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Incr(ctx, "2024-05-01", "visits"))
	require.NoError(t, store.Incr(ctx, "2024-05-01", "visits"))
	require.NoError(t, store.Incr(ctx, "2024-05-01", "generated:work_certificate"))
	require.NoError(t, store.Incr(ctx, "2024-05-02", "visits"))

	counts, err := store.Counts(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"visits": 2, "generated:work_certificate": 1}, counts)

	assert.Equal(t, 30*24*time.Hour, mr.TTL("stats:2024-05-01"))
}

func TestStatsStore_CountsEmptyDay(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewStatsStore(client, 0)

	counts, err := store.Counts(context.Background(), "1999-01-01")
	require.NoError(t, err)
	assert.Empty(t, counts)
}
