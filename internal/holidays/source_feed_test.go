package holidays

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdays/pkg/platform/sentinel"
)

func newTestFeed(t *testing.T, handler http.HandlerFunc, opts ...FeedOption) *FeedSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]FeedOption{WithRateLimit(0, 0)}, opts...)
	src, err := NewFeedSource(srv.URL, opts...)
	require.NoError(t, err)
	return src
}

func TestFeedSourceFetch(t *testing.T) {
	t.Run("object layout", func(t *testing.T) {
		src := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(`{"holidays":["2025-01-01","2025-01-06"]}`))
		})

		set, err := src.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-01", "2025-01-06"}, set.Dates())
	})

	t.Run("array layout with malformed entries", func(t *testing.T) {
		src := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`["2025-01-01","soon",7]`))
		})

		set, err := src.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-01"}, set.Dates())
	})

	t.Run("unexpected layout is bad data", func(t *testing.T) {
		src := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"moved"}`))
		})

		_, err := src.Fetch(context.Background())
		require.Error(t, err)
		assert.Equal(t, ErrorBadData, Category(err))
		assert.False(t, IsRetryable(err))
		assert.True(t, errors.Is(err, sentinel.ErrUnavailable))
	})

	t.Run("server error is retryable bad status", func(t *testing.T) {
		src := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := src.Fetch(context.Background())
		require.Error(t, err)
		assert.Equal(t, ErrorBadStatus, Category(err))
		assert.True(t, IsRetryable(err))
	})

	t.Run("not found is not retryable", func(t *testing.T) {
		src := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := src.Fetch(context.Background())
		assert.Equal(t, ErrorBadStatus, Category(err))
		assert.False(t, IsRetryable(err))
	})

	t.Run("slow feed times out", func(t *testing.T) {
		release := make(chan struct{})
		src := newTestFeed(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}, WithTimeout(50*time.Millisecond))
		defer close(release)

		_, err := src.Fetch(context.Background())
		require.Error(t, err)
		assert.Equal(t, ErrorTimeout, Category(err))
		assert.True(t, IsRetryable(err))
	})

	t.Run("unreachable feed is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		src, err := NewFeedSource(url, WithRateLimit(0, 0))
		require.NoError(t, err)

		_, err = src.Fetch(context.Background())
		require.Error(t, err)
		assert.Equal(t, ErrorUnavailable, Category(err))
	})
}

func TestNewFeedSourceRequiresURL(t *testing.T) {
	_, err := NewFeedSource("")
	assert.Error(t, err)
}
