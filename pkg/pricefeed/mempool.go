package pricefeed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/httpclient"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

const (
	DefaultMempoolURL = "https://mempool.space"

	mempoolPricesPath = "/api/v1/prices"
	mempoolTimeKey    = "time"
)

// Mempool fetches rates from a mempool.space compatible `/api/v1/prices` endpoint.
type Mempool struct {
	client *httpclient.Client
}

func NewMempool(baseURL string, config httpclient.Config) (*Mempool, error) {
	client, err := httpclient.New(utils.Default(baseURL, DefaultMempoolURL), config)
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Mempool{client: client}, nil
}

// Prices is a snapshot of bitcoin prices by currency code.
type Prices struct {
	Time  time.Time
	Rates map[string]decimal.Decimal
}

// Prices fetches the prices of one bitcoin in every currency the API knows.
func (m *Mempool) Prices(ctx context.Context) (*Prices, error) {
	var body map[string]json.RawMessage
	if err := m.client.GetJSON(ctx, mempoolPricesPath, httpclient.RequestOptions{}, &body); err != nil {
		return nil, errors.Wrap(err, "can't fetch prices")
	}

	prices := &Prices{Rates: make(map[string]decimal.Decimal, len(body))}
	for key, raw := range body {
		if key == mempoolTimeKey {
			var unix int64
			if err := json.Unmarshal(raw, &unix); err != nil {
				return nil, errors.Wrapf(err, "invalid price time %s", string(raw))
			}
			prices.Time = time.Unix(unix, 0).UTC()
			continue
		}
		// rates are kept as decimals straight from the JSON text to avoid float rounding
		rate, err := decimal.NewFromString(string(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s price %s", key, string(raw))
		}
		prices.Rates[key] = rate
	}
	return prices, nil
}

func (m *Mempool) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	code, err := NormalizeCurrency(currency)
	if err != nil {
		return decimal.Zero, errors.WithStack(err)
	}
	prices, err := m.Prices(ctx)
	if err != nil {
		return decimal.Zero, errors.WithStack(err)
	}
	rate, ok := prices.Rates[code]
	if !ok {
		return decimal.Zero, errors.Wrapf(errs.NotFound, "%s rate", code)
	}
	if err := validateRate(code, rate); err != nil {
		return decimal.Zero, errors.WithStack(err)
	}
	return rate, nil
}
