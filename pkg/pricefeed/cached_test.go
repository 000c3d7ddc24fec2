package pricefeed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestCache(provider Provider, ttl time.Duration) (*Cached, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	cache := NewCached(provider, ttl)
	cache.now = clock.Now
	return cache, clock
}

func TestCached(t *testing.T) {
	ctx := context.Background()

	t.Run("serves_from_cache_within_ttl", func(t *testing.T) {
		provider := &mockProvider{}
		provider.On("Rate", mock.Anything, "USD").Return(decimal.NewFromInt(50000), nil).Once()
		cache, clock := newTestCache(provider, time.Minute)

		for i := 0; i < 3; i++ {
			rate, err := cache.Rate(ctx, "usd")
			require.NoError(t, err)
			assert.Equal(t, "50000", rate.String())
			clock.Advance(10 * time.Second)
		}
		provider.AssertNumberOfCalls(t, "Rate", 1)
	})

	t.Run("refreshes_after_ttl", func(t *testing.T) {
		provider := &mockProvider{}
		provider.On("Rate", mock.Anything, "USD").Return(decimal.NewFromInt(50000), nil).Once()
		provider.On("Rate", mock.Anything, "USD").Return(decimal.NewFromInt(51000), nil).Once()
		cache, clock := newTestCache(provider, time.Minute)

		_, err := cache.Rate(ctx, "USD")
		require.NoError(t, err)
		clock.Advance(time.Minute)

		rate, err := cache.Rate(ctx, "USD")
		require.NoError(t, err)
		assert.Equal(t, "51000", rate.String())
		provider.AssertExpectations(t)
	})

	t.Run("serves_stale_rate_on_failure", func(t *testing.T) {
		provider := &mockProvider{}
		provider.On("Rate", mock.Anything, "EUR").Return(decimal.NewFromInt(45000), nil).Once()
		provider.On("Rate", mock.Anything, "EUR").Return(decimal.Zero, errors.New("feed down")).Once()
		cache, clock := newTestCache(provider, time.Minute)

		_, err := cache.Rate(ctx, "EUR")
		require.NoError(t, err)
		clock.Advance(2 * time.Minute)

		rate, err := cache.Rate(ctx, "EUR")
		require.NoError(t, err)
		assert.Equal(t, "45000", rate.String())
		provider.AssertExpectations(t)
	})

	t.Run("fails_without_cached_rate", func(t *testing.T) {
		provider := &mockProvider{}
		provider.On("Rate", mock.Anything, "JPY").Return(decimal.Zero, errors.WithStack(errs.NotFound)).Once()
		cache, _ := newTestCache(provider, time.Minute)

		_, err := cache.Rate(ctx, "JPY")
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("requires_currency", func(t *testing.T) {
		cache, _ := newTestCache(&mockProvider{}, time.Minute)
		_, err := cache.Rate(ctx, " ")
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

type blockingProvider struct {
	mu      sync.Mutex
	calls   int
	ctxErr  error
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) Rate(ctx context.Context, _ string) (decimal.Decimal, error) {
	p.mu.Lock()
	p.calls++
	first := p.calls == 1
	p.mu.Unlock()
	if first {
		close(p.started)
	}
	<-p.release

	p.mu.Lock()
	defer p.mu.Unlock()
	p.ctxErr = ctx.Err()
	return decimal.NewFromInt(50000), nil
}

func TestCachedCollapsesConcurrentMisses(t *testing.T) {
	provider := &blockingProvider{started: make(chan struct{}), release: make(chan struct{})}
	cache := NewCached(provider, time.Hour)

	var wg sync.WaitGroup
	results := make([]decimal.Decimal, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rate, err := cache.Rate(context.Background(), "USD")
			assert.NoError(t, err)
			results[i] = rate
		}(i)
	}

	<-provider.started
	time.Sleep(50 * time.Millisecond)
	close(provider.release)
	wg.Wait()

	assert.Equal(t, 1, provider.calls)
	for _, rate := range results {
		assert.Equal(t, "50000", rate.String())
	}
}

func TestCachedFetchOutlivesCanceledCaller(t *testing.T) {
	provider := &blockingProvider{started: make(chan struct{}), release: make(chan struct{})}
	cache := NewCached(provider, time.Hour)

	firstCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.Rate(firstCtx, "USD")
		firstErr <- err
	}()
	<-provider.started

	type result struct {
		rate decimal.Decimal
		err  error
	}
	second := make(chan result, 1)
	go func() {
		rate, err := cache.Rate(context.Background(), "USD")
		second <- result{rate, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(provider.release)
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "50000", res.rate.String())

	provider.mu.Lock()
	defer provider.mu.Unlock()
	assert.Equal(t, 1, provider.calls)
	assert.NoError(t, provider.ctxErr)
}
