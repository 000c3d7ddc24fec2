package pricefeed

import (
	"context"
	"sync"
	"time"

	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// upstream requests of a cache miss outlive the request that triggered them, up to this timeout
const defaultFetchTimeout = 10 * time.Second

type cacheEntry struct {
	rate      decimal.Decimal
	fetchedAt time.Time
}

// Cached caches rates of another provider per currency for a TTL.
// Concurrent misses for the same currency share one upstream request, and the last known
// rate is served when a refresh fails.
type Cached struct {
	provider Provider
	ttl      time.Duration
	timeout  time.Duration
	now      func() time.Time

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewCached(provider Provider, ttl time.Duration) *Cached {
	return &Cached{
		provider: provider,
		ttl:      ttl,
		timeout:  defaultFetchTimeout,
		now:      time.Now,
		entries:  make(map[string]cacheEntry),
	}
}

func (c *Cached) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	code, err := NormalizeCurrency(currency)
	if err != nil {
		return decimal.Zero, errors.WithStack(err)
	}

	entry, cached := c.get(code)
	if cached && c.now().Sub(entry.fetchedAt) < c.ttl {
		return entry.rate, nil
	}

	// the shared fetch must not fail for every waiter when the first caller goes away
	ch := c.group.DoChan(code, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		rate, err := c.provider.Rate(fetchCtx, code)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		c.set(code, rate)
		logger.DebugContext(ctx, "Refreshed exchange rate", slogx.String("currency", code), slogx.Stringer("rate", rate))
		return rate, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		res = singleflight.Result{Err: errors.WithStack(ctx.Err())}
	}
	v, err := res.Val, res.Err
	if err != nil {
		if cached {
			logger.WarnContext(ctx, "Failed to refresh exchange rate, serving stale rate",
				slogx.String("currency", code),
				slogx.Duration("age", c.now().Sub(entry.fetchedAt)),
				slogx.Error(err),
			)
			return entry.rate, nil
		}
		return decimal.Zero, errors.WithStack(err)
	}
	return v.(decimal.Decimal), nil
}

func (c *Cached) get(code string) (cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[code]
	return entry, ok
}

func (c *Cached) set(code string, rate decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[code] = cacheEntry{rate: rate, fetchedAt: c.now()}
}
