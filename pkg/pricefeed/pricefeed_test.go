package pricefeed

import (
	"context"
	"testing"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("static", func(t *testing.T) {
		provider, err := New(Config{Provider: "STATIC", StaticRates: map[string]string{"usd": "50000.5"}})
		require.NoError(t, err)
		require.IsType(t, &Cached{}, provider)

		rate, err := provider.Rate(ctx, "USD")
		require.NoError(t, err)
		assert.Equal(t, "50000.5", rate.String())

		_, err = provider.Rate(ctx, "EUR")
		assert.ErrorIs(t, err, errs.NotFound)
	})
	t.Run("mempool_default", func(t *testing.T) {
		provider, err := New(Config{})
		require.NoError(t, err)
		cached := provider.(*Cached)
		assert.Equal(t, DefaultTTL, cached.ttl)
		require.IsType(t, &Mempool{}, cached.provider)
		assert.Equal(t, DefaultMempoolURL, cached.provider.(*Mempool).client.BaseURL().String())
	})
	t.Run("unsupported_provider", func(t *testing.T) {
		_, err := New(Config{Provider: "coingecko"})
		assert.ErrorIs(t, err, errs.Unsupported)
	})
}

func TestNewStatic(t *testing.T) {
	testcases := map[string]map[string]string{
		"invalid_number": {"USD": "fifty"},
		"zero_rate":      {"USD": "0"},
		"negative_rate":  {"USD": "-1"},
		"empty_currency": {"": "1"},
	}
	for name, rates := range testcases {
		t.Run(name, func(t *testing.T) {
			_, err := NewStatic(rates)
			assert.Error(t, err)
		})
	}
}
