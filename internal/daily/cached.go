package daily

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sakinahapp/sakinah/internal/cache"
	"github.com/sakinahapp/sakinah/internal/fault"
)

// Day names the content being fetched. Date is the viewer's local date for
// lookups made through Today or Refresh, and zero for lookups by ordinal.
type Day struct {
	Ordinal int
	Date    time.Time
}

// Fetcher loads the content for a day from a remote collaborator.
type Fetcher[T any] func(ctx context.Context, day Day) (T, error)

// RetryPolicy bounds the retries of a failed fetch.
type RetryPolicy struct {
	MaxRetries      int // attempts after the first
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy retries three times starting at 500ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// Option configures a Cached picker.
type Option func(*options)

type options struct {
	retry  RetryPolicy
	period RotationPeriod
	logger *zap.Logger
}

// WithRetry sets the retry policy.
func WithRetry(p RetryPolicy) Option {
	return func(o *options) { o.retry = p }
}

// WithPeriod sets the rotation used by Today and Refresh. Default Yearly.
func WithPeriod(p RotationPeriod) Option {
	return func(o *options) { o.period = p }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Cached is a network-backed daily picker.
//
// Results are stored in a cache.Store under "daily:<name>:<ordinal>". Each
// lookup for the current day first purges entries of the same name for
// other ordinals, so at most one entry per name survives across days.
// Concurrent lookups of the same ordinal share a single fetch, which is
// cancelled once every caller waiting on it has given up. Failed fetches
// are retried with exponential backoff and never cached.
type Cached[T any] struct {
	name   string
	store  cache.Store
	fetch  Fetcher[T]
	opts   options
	log    *zap.Logger
	clock  func() time.Time
	flight singleflight.Group

	mu    sync.Mutex
	calls map[string]*call
}

// call tracks the callers waiting on one in-flight fetch.
type call struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// NewCached builds a Cached picker for the content type name.
func NewCached[T any](name string, store cache.Store, fetch Fetcher[T], opts ...Option) *Cached[T] {
	o := options{
		retry:  DefaultRetryPolicy(),
		period: Yearly,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cached[T]{
		name:  name,
		store: store,
		fetch: fetch,
		opts:  o,
		log:   o.logger.With(zap.String("content", name)),
		clock: time.Now,
		calls: make(map[string]*call),
	}
}

// Name returns the content type name.
func (c *Cached[T]) Name() string { return c.name }

// Key returns the cache key for ordinal.
func (c *Cached[T]) Key(ordinal int) string {
	return c.prefix() + strconv.Itoa(ordinal)
}

func (c *Cached[T]) prefix() string {
	return "daily:" + c.name + ":"
}

// Today returns the content for now's local date. Looking at a day other
// than the real today leaves the current entry in place.
func (c *Cached[T]) Today(ctx context.Context, now time.Time) (T, error) {
	return c.get(ctx, c.dayOf(now), sameDate(now, c.clock()))
}

// Refresh purges stale entries and prefetches the content for now.
func (c *Cached[T]) Refresh(ctx context.Context, now time.Time) error {
	_, err := c.get(ctx, c.dayOf(now), true)
	return err
}

// Get returns the content for ordinal, from cache when possible.
//
// If ctx is cancelled while a fetch is in flight, Get returns ctx.Err().
// The fetch carries on while other callers still wait for it, and its
// result is cached on success.
func (c *Cached[T]) Get(ctx context.Context, ordinal int) (T, error) {
	return c.get(ctx, Day{Ordinal: ordinal}, true)
}

func (c *Cached[T]) dayOf(now time.Time) Day {
	return Day{Ordinal: Ordinal(now, c.opts.period), Date: now}
}

func (c *Cached[T]) get(ctx context.Context, day Day, purge bool) (T, error) {
	var zero T
	if day.Ordinal < 0 {
		return zero, fault.Invalid("negative day ordinal %d", day.Ordinal)
	}

	if purge {
		c.Purge(day.Ordinal)
	}

	if v, ok := c.load(day.Ordinal); ok {
		return v, nil
	}

	key := c.Key(day.Ordinal)
	cl := c.join(ctx, key)
	ch := c.flight.DoChan(key, func() (any, error) {
		defer c.finish(key, cl)
		return c.fetchAndStore(cl.ctx, day)
	})

	select {
	case <-ctx.Done():
		c.leave(key, cl, true)
		return zero, ctx.Err()
	case res := <-ch:
		c.leave(key, cl, false)
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// join registers a waiter on the fetch for key, creating its context if
// no fetch is in flight. The fetch context outlives any single caller.
func (c *Cached[T]) join(ctx context.Context, key string) *call {
	c.mu.Lock()
	defer c.mu.Unlock()
	cl, ok := c.calls[key]
	if !ok {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		cl = &call{ctx: fctx, cancel: cancel}
		c.calls[key] = cl
	}
	cl.waiters++
	return cl
}

// leave drops a waiter. When the last waiter gives up the fetch is
// cancelled and forgotten, so the next lookup starts a fresh one.
func (c *Cached[T]) leave(key string, cl *call, abandoned bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cl.waiters--
	if !abandoned || cl.waiters > 0 {
		return
	}
	cl.cancel()
	if c.calls[key] == cl {
		delete(c.calls, key)
		c.flight.Forget(key)
		c.log.Debug("fetch abandoned", zap.String("key", key))
	}
}

func (c *Cached[T]) finish(key string, cl *call) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cl.cancel()
	if c.calls[key] == cl {
		delete(c.calls, key)
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// Purge removes entries of this content type for any ordinal other than
// keep and returns how many were removed. Failures are logged.
func (c *Cached[T]) Purge(keep int) int {
	keys, err := c.store.Keys(c.prefix())
	if err != nil {
		c.log.Warn("listing cache keys", zap.Error(err))
		return 0
	}

	current := c.Key(keep)
	removed := 0
	for _, k := range keys {
		if k == current || !c.owns(k) {
			continue
		}
		if err := c.store.Remove(k); err != nil {
			c.log.Warn("removing stale entry", zap.String("key", k), zap.Error(err))
			continue
		}
		removed++
	}
	if removed > 0 {
		c.log.Debug("purged stale entries", zap.Int("removed", removed), zap.Int("ordinal", keep))
	}
	return removed
}

// owns reports whether key is "<prefix><digits>" for this picker.
func (c *Cached[T]) owns(key string) bool {
	rest, ok := strings.CutPrefix(key, c.prefix())
	if !ok || rest == "" {
		return false
	}
	_, err := strconv.Atoi(rest)
	return err == nil
}

func (c *Cached[T]) load(ordinal int) (T, bool) {
	var v T
	key := c.Key(ordinal)

	raw, ok, err := c.store.Get(key)
	if err != nil {
		c.log.Warn("reading cache", zap.String("key", key), zap.Error(err))
		return v, false
	}
	if !ok {
		c.log.Debug("cache miss", zap.Int("ordinal", ordinal))
		return v, false
	}

	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		c.log.Warn("discarding corrupt entry",
			zap.String("key", key),
			zap.Error(fmt.Errorf("%w: %v", fault.ErrCacheCorrupt, err)),
		)
		if err := c.store.Remove(key); err != nil {
			c.log.Warn("removing corrupt entry", zap.String("key", key), zap.Error(err))
		}
		var zero T
		return zero, false
	}

	c.log.Debug("cache hit", zap.Int("ordinal", ordinal))
	return v, true
}

func (c *Cached[T]) fetchAndStore(ctx context.Context, day Day) (T, error) {
	ordinal := day.Ordinal
	// Another process may have filled the entry while we waited.
	if v, ok := c.load(ordinal); ok {
		return v, nil
	}

	v, err := c.fetchWithRetry(ctx, day)
	if err != nil {
		c.log.Error("fetch failed", zap.Int("ordinal", ordinal), zap.Error(err))
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("encoding entry", zap.Error(err))
		return v, nil
	}
	if err := c.store.Set(c.Key(ordinal), string(data)); err != nil {
		c.log.Warn("writing cache", zap.Error(err))
	}
	return v, nil
}

func (c *Cached[T]) fetchWithRetry(ctx context.Context, day Day) (T, error) {
	p := c.opts.retry

	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}

	attempt := 0
	op := func() (T, error) {
		attempt++
		v, err := c.fetch(ctx, day)
		if err == nil {
			return v, nil
		}
		if errors.Is(err, fault.ErrInvalidArgument) {
			return v, backoff.Permanent(err)
		}
		if ue, ok := fault.AsUpstream(err); ok && !ue.Retryable() {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	maxRetries := p.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	v, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(maxRetries+1)),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.log.Info("retrying fetch",
				zap.Int("ordinal", day.Ordinal),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", next),
				zap.Error(err),
			)
		}),
	)
	if err == nil {
		return v, nil
	}
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		err = perm.Unwrap()
	}
	if errors.Is(err, fault.ErrInvalidArgument) || fault.IsUpstream(err) {
		return v, err
	}
	return v, fault.Upstream(c.name, 0, err)
}
