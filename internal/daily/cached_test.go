package daily

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakinahapp/sakinah/internal/cache"
	"github.com/sakinahapp/sakinah/internal/fault"
)

type verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

var fastRetry = RetryPolicy{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}

func countingFetcher(calls *atomic.Int32) Fetcher[verse] {
	return func(_ context.Context, d Day) (verse, error) {
		calls.Add(1)
		return verse{Number: d.Ordinal, Text: "text"}, nil
	}
}

func TestCached_MissThenHit(t *testing.T) {
	store := cache.NewMemory()
	var calls atomic.Int32
	c := NewCached("ayah", store, countingFetcher(&calls), WithRetry(fastRetry))

	v, err := c.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, v.Number)

	v, err = c.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, v.Number)
	assert.EqualValues(t, 1, calls.Load(), "second lookup should be served from cache")

	raw, ok, _ := store.Get("daily:ayah:42")
	require.True(t, ok)
	assert.JSONEq(t, `{"number":42,"text":"text"}`, raw)
}

func TestCached_PurgesStaleOrdinals(t *testing.T) {
	store := cache.NewMemory()
	var calls atomic.Int32
	c := NewCached("ayah", store, countingFetcher(&calls), WithRetry(fastRetry))

	_, err := c.Get(context.Background(), 127)
	require.NoError(t, err)
	// Another content type must be left alone.
	require.NoError(t, store.Set("daily:ayah-extra:3", `{}`))
	require.NoError(t, store.Set("daily:prayer.johor:127", `{}`))

	_, err = c.Get(context.Background(), 128)
	require.NoError(t, err)

	keys, err := store.Keys("daily:ayah:")
	require.NoError(t, err)
	assert.Equal(t, []string{"daily:ayah:128"}, keys)

	_, ok, _ := store.Get("daily:prayer.johor:127")
	assert.True(t, ok)
	_, ok, _ = store.Get("daily:ayah-extra:3")
	assert.True(t, ok)
}

func TestCached_PurgeReturnsCount(t *testing.T) {
	store := cache.NewMemory()
	for _, k := range []string{"daily:ayah:1", "daily:ayah:2", "daily:ayah:3", "daily:ayah:notanumber"} {
		require.NoError(t, store.Set(k, "{}"))
	}
	c := NewCached("ayah", store, countingFetcher(new(atomic.Int32)))

	assert.Equal(t, 2, c.Purge(3))
	keys, _ := store.Keys("daily:ayah:")
	assert.Equal(t, []string{"daily:ayah:3", "daily:ayah:notanumber"}, keys)
}

func TestCached_CorruptEntryIsHealed(t *testing.T) {
	store := cache.NewMemory()
	require.NoError(t, store.Set("daily:ayah:9", "{not json"))

	var calls atomic.Int32
	c := NewCached("ayah", store, countingFetcher(&calls), WithRetry(fastRetry))

	v, err := c.Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, 9, v.Number)
	assert.EqualValues(t, 1, calls.Load())

	raw, _, _ := store.Get("daily:ayah:9")
	assert.JSONEq(t, `{"number":9,"text":"text"}`, raw)
}

func TestCached_FailureNotCached(t *testing.T) {
	store := cache.NewMemory()
	var calls atomic.Int32
	var healthy atomic.Bool

	c := NewCached("ayah", store, func(_ context.Context, d Day) (verse, error) {
		calls.Add(1)
		if !healthy.Load() {
			return verse{}, fault.Upstream("quran", http.StatusServiceUnavailable, nil)
		}
		return verse{Number: d.Ordinal}, nil
	}, WithRetry(fastRetry))

	_, err := c.Get(context.Background(), 5)
	require.Error(t, err)
	ue, ok := fault.AsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, ue.Status)
	assert.EqualValues(t, 3, calls.Load(), "one attempt plus two retries")
	assert.Zero(t, store.Len())

	healthy.Store(true)
	v, err := c.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Number)
	assert.EqualValues(t, 4, calls.Load(), "retry after failure must fetch again")
}

func TestCached_RecoversWithinRetries(t *testing.T) {
	var calls atomic.Int32
	c := NewCached("ayah", cache.NewMemory(), func(_ context.Context, d Day) (verse, error) {
		if calls.Add(1) < 3 {
			return verse{}, errors.New("connection reset")
		}
		return verse{Number: d.Ordinal}, nil
	}, WithRetry(fastRetry))

	v, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Number)
	assert.EqualValues(t, 3, calls.Load())
}

func TestCached_PermanentFailureStopsEarly(t *testing.T) {
	var calls atomic.Int32
	c := NewCached("ayah", cache.NewMemory(), func(_ context.Context, d Day) (verse, error) {
		calls.Add(1)
		return verse{}, fault.Upstream("quran", http.StatusNotFound, nil)
	}, WithRetry(fastRetry))

	_, err := c.Get(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, fault.IsUpstream(err))
	assert.EqualValues(t, 1, calls.Load())
}

func TestCached_PlainErrorBecomesUpstream(t *testing.T) {
	c := NewCached("ayah", cache.NewMemory(), func(_ context.Context, d Day) (verse, error) {
		return verse{}, errors.New("dial tcp: no route to host")
	}, WithRetry(RetryPolicy{MaxRetries: 0}))

	_, err := c.Get(context.Background(), 1)
	ue, ok := fault.AsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, "ayah", ue.Service)
	assert.True(t, ue.Retryable())
}

func TestCached_NegativeOrdinal(t *testing.T) {
	c := NewCached("ayah", cache.NewMemory(), countingFetcher(new(atomic.Int32)))
	_, err := c.Get(context.Background(), -3)
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
}

func TestCached_ConcurrentCallersShareOneFetch(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	c := NewCached("ayah", cache.NewMemory(), func(_ context.Context, d Day) (verse, error) {
		calls.Add(1)
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return verse{Number: d.Ordinal}, nil
	}, WithRetry(fastRetry))

	const callers = 8
	var wg sync.WaitGroup
	results := make([]verse, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Get(context.Background(), 77)
		}(i)
	}

	<-started
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 77, results[i].Number)
	}
}

func TestCached_CancelledCallerLeavesSharedFetchRunning(t *testing.T) {
	store := cache.NewMemory()
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	c := NewCached("ayah", store, func(ctx context.Context, d Day) (verse, error) {
		calls.Add(1)
		started <- struct{}{}
		select {
		case <-release:
			return verse{Number: d.Ordinal}, nil
		case <-ctx.Done():
			return verse{}, ctx.Err()
		}
	}, WithRetry(fastRetry))

	ctx, cancel := context.WithCancel(context.Background())
	leaving := make(chan error, 1)
	go func() {
		_, err := c.Get(ctx, 3)
		leaving <- err
	}()
	<-started

	staying := make(chan error, 1)
	go func() {
		_, err := c.Get(context.Background(), 3)
		staying <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-leaving, context.Canceled)

	close(release)
	require.NoError(t, <-staying)
	assert.EqualValues(t, 1, calls.Load())

	_, ok, _ := store.Get("daily:ayah:3")
	assert.True(t, ok, "the shared fetch should still fill the cache")
}

func TestCached_AbandonedFetchIsCancelled(t *testing.T) {
	store := cache.NewMemory()
	started := make(chan struct{}, 4)
	stopped := make(chan error, 4)

	c := NewCached("ayah", store, func(ctx context.Context, d Day) (verse, error) {
		started <- struct{}{}
		<-ctx.Done()
		stopped <- ctx.Err()
		return verse{}, ctx.Err()
	}, WithRetry(fastRetry))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Get(ctx, 5)
		done <- err
	}()

	<-started
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	select {
	case err := <-stopped:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("fetch kept running after its only caller left")
	}

	_, ok, _ := store.Get("daily:ayah:5")
	assert.False(t, ok)
}

func TestCached_FetchAfterAbandonStartsFresh(t *testing.T) {
	var calls atomic.Int32
	first := make(chan struct{})

	c := NewCached("ayah", cache.NewMemory(), func(ctx context.Context, d Day) (verse, error) {
		if calls.Add(1) == 1 {
			close(first)
			<-ctx.Done()
			return verse{}, ctx.Err()
		}
		return verse{Number: d.Ordinal}, nil
	}, WithRetry(RetryPolicy{MaxRetries: 0}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-first
		cancel()
	}()
	_, err := c.Get(ctx, 8)
	require.ErrorIs(t, err, context.Canceled)

	v, err := c.Get(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, 8, v.Number)
}

func TestCached_TodayUsesPeriod(t *testing.T) {
	store := cache.NewMemory()
	c := NewCached("dua", store, countingFetcher(new(atomic.Int32)), WithPeriod(Monthly))

	v, err := c.Today(context.Background(), time.Date(2026, 9, 21, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 21, v.Number)
	assert.Equal(t, "daily:dua:21", c.Key(21))
}

func TestCached_TodayPassesViewerDate(t *testing.T) {
	var got Day
	c := NewCached("prayer.kl", cache.NewMemory(), func(_ context.Context, d Day) (verse, error) {
		got = d
		return verse{Number: d.Ordinal}, nil
	})

	viewed := time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC)
	_, err := c.Today(context.Background(), viewed)
	require.NoError(t, err)
	assert.Equal(t, 366, got.Ordinal)
	assert.True(t, got.Date.Equal(viewed))

	_, err = c.Get(context.Background(), 12)
	require.NoError(t, err)
	assert.True(t, got.Date.IsZero(), "lookups by ordinal carry no date")
}

func TestCached_OtherDayKeepsTodaysEntry(t *testing.T) {
	store := cache.NewMemory()
	c := NewCached("ayah", store, countingFetcher(new(atomic.Int32)))
	today := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	c.clock = func() time.Time { return today }

	_, err := c.Today(context.Background(), today)
	require.NoError(t, err)

	// Looking back at an earlier day must not evict today's entry.
	_, err = c.Today(context.Background(), time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	keys, _ := store.Keys("daily:ayah:")
	assert.ElementsMatch(t, []string{"daily:ayah:291", "daily:ayah:60"}, keys)

	// Back on today, the earlier day's entry is purged.
	_, err = c.Today(context.Background(), today)
	require.NoError(t, err)
	keys, _ = store.Keys("daily:ayah:")
	assert.Equal(t, []string{"daily:ayah:291"}, keys)
}
