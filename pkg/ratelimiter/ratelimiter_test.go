package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idcheck/pkg/ratelimiter"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *manualClock {
	return &manualClock{now: time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, clock *manualClock, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clock.Now), ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, cfg, ratelimiter.WithTimeSource(clock.Now))
	require.NoError(t, err)
	return b, store
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	tests := []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	}
	for _, cfg := range tests {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}

	_, err := ratelimiter.NewBucket(nil, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}

func TestBucket_AllowAndRefill(t *testing.T) {
	t.Parallel()
	clock := newClock()
	b, _ := newBucket(t, clock, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: 10 * time.Second})
	ctx := context.Background()

	for want := 2; want >= 0; want-- {
		res, err := b.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, want, res.Remaining)
		assert.Equal(t, 3, res.Limit)
		assert.Zero(t, res.RetryAfter)
	}

	clock.Advance(4 * time.Second)
	res, err := b.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, 6*time.Second, res.RetryAfter)

	// Denied requests do not dig the bucket deeper.
	res, err = b.Allow(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, -1, res.Remaining)

	other, err := b.Allow(ctx, "other")
	require.NoError(t, err)
	assert.True(t, other.Allowed(), "keys are independent")

	clock.Advance(6 * time.Second)
	res, err = b.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	clock.Advance(time.Hour)
	res, err = b.Allow(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining, "refill is capped at capacity")
}

func TestBucket_AllowNAndReset(t *testing.T) {
	t.Parallel()
	clock := newClock()
	b, store := newBucket(t, clock, ratelimiter.Config{Capacity: 5, RefillRate: 5, RefillInterval: time.Minute})
	ctx := context.Background()

	_, err := b.AllowN(ctx, "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	res, err := b.AllowN(ctx, "k", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Remaining)

	require.NoError(t, b.Reset(ctx, "k"))
	assert.Equal(t, 0, store.Len())

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = b.Allow(cancelled, "k")
	assert.ErrorIs(t, err, ratelimiter.ErrContextCancelled)
}

func TestMemoryStore_RemoveStale(t *testing.T) {
	t.Parallel()
	clock := newClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithClock(clock.Now),
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithStaleAfter(time.Minute),
	)
	defer store.Close()
	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)

	_, err = b.Allow(context.Background(), "old")
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)
	_, err = b.Allow(context.Background(), "fresh")
	require.NoError(t, err)

	store.RemoveStale()
	assert.Equal(t, 1, store.Len())
	store.Close()
	store.Close()
}

func TestComposite(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	ip := func(*http.Request) string { return "192.0.2.1" }
	empty := func(*http.Request) string { return "" }
	long := func(*http.Request) string { return strings.Repeat("x", 80) }

	assert.Equal(t, "192.0.2.1", ratelimiter.Composite(ip, empty)(r))
	assert.Equal(t, "192.0.2.1:192.0.2.1", ratelimiter.Composite(ip, ip)(r))
	assert.Empty(t, ratelimiter.Composite(empty)(r))

	hashed := ratelimiter.Composite(ip, long)(r)
	assert.LessOrEqual(t, len(hashed), 13)
	assert.Equal(t, hashed, ratelimiter.Composite(ip, long)(r))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	clock := newClock()
	b, _ := newBucket(t, clock, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 1500 * time.Millisecond})

	var denied ratelimiter.Result
	mw := ratelimiter.Middleware(b,
		func(r *http.Request) string { return r.Header.Get("X-Client") },
		ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, _ *http.Request, res ratelimiter.Result) {
			denied = res
			w.WriteHeader(http.StatusTooManyRequests)
		}),
	)
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))

	call := func(client string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		if client != "" {
			r.Header.Set("X-Client", client)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec
	}

	rec := call("a")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

	rec = call("a")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "2", rec.Header().Get("Retry-After"), "rounded up")
	assert.False(t, denied.Allowed())

	rec = call("")
	assert.Equal(t, http.StatusNoContent, rec.Code, "empty key is not limited")
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, assert.AnError
}

func (failingStore) Reset(context.Context, string) error { return nil }

func TestMiddleware_StoreError(t *testing.T) {
	t.Parallel()
	b, err := ratelimiter.NewBucket(failingStore{}, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)

	h := ratelimiter.Middleware(b, func(*http.Request) string { return "k" })(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
