// Package pricefeed supplies bitcoin exchange rates (fiat per bitcoin) to the amount engine.
package pricefeed

import (
	"context"
	"strings"
	"time"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/httpclient"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// Provider returns the price of one bitcoin in the given fiat currency.
type Provider interface {
	Rate(ctx context.Context, currency string) (decimal.Decimal, error)
}

const (
	ProviderMempool = "mempool"
	ProviderStatic  = "static"

	DefaultTTL = time.Minute
)

type Config struct {
	// Provider is the rate source, "mempool" (default) or "static".
	Provider string `mapstructure:"provider"`

	// BaseURL of the mempool.space compatible API.
	BaseURL string `mapstructure:"base_url"`

	// TTL of cached rates.
	TTL time.Duration `mapstructure:"ttl"`

	// StaticRates maps currency codes to rates for the static provider.
	StaticRates map[string]string `mapstructure:"static_rates"`

	// Debug logs every request to the rate source.
	Debug bool `mapstructure:"debug"`
}

// New creates the configured provider wrapped in a rate cache.
func New(config Config) (Provider, error) {
	var provider Provider
	switch strings.ToLower(config.Provider) {
	case "", ProviderMempool:
		mempool, err := NewMempool(config.BaseURL, httpclient.Config{Debug: config.Debug})
		if err != nil {
			return nil, errors.Wrap(err, "can't create mempool price feed")
		}
		provider = mempool
	case ProviderStatic:
		static, err := NewStatic(config.StaticRates)
		if err != nil {
			return nil, errors.Wrap(err, "invalid static rates")
		}
		provider = static
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q price feed provider", config.Provider)
	}

	ttl := config.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return NewCached(provider, ttl), nil
}

// NormalizeCurrency returns the upper-case currency code.
func NormalizeCurrency(currency string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		return "", errors.Wrap(errs.InvalidArgument, "currency is required")
	}
	return code, nil
}

func validateRate(currency string, rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return errors.Wrapf(errs.NotFound, "no positive %s rate, got %s", currency, rate)
	}
	return nil
}
