package holidays

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdays/pkg/platform/sentinel"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	_, err := cache.Load(ctx, "co")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, cache.Store(ctx, "co", MustSet("2025-01-06"), time.Hour))
	got, err := cache.Load(ctx, "co")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-06"}, got.Dates())

	now = now.Add(time.Hour)
	_, err = cache.Load(ctx, "co")
	assert.ErrorIs(t, err, sentinel.ErrNotFound, "entry expires at its ttl")

	require.NoError(t, cache.Store(ctx, "co", MustSet("2025-01-06"), 0))
	_, err = cache.Load(ctx, "co")
	assert.ErrorIs(t, err, sentinel.ErrNotFound, "zero ttl stores nothing")
}
