package pricefeed

import (
	"context"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// Static serves fixed rates, for offline use and tests.
type Static struct {
	rates map[string]decimal.Decimal
}

func NewStatic(rates map[string]string) (*Static, error) {
	parsed := make(map[string]decimal.Decimal, len(rates))
	for currency, value := range rates {
		code, err := NormalizeCurrency(currency)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return nil, errors.Wrapf(errs.InvalidArgument, "%s rate %q: %v", code, value, err)
		}
		if err := validateRate(code, rate); err != nil {
			return nil, errors.WithStack(err)
		}
		parsed[code] = rate
	}
	return &Static{rates: parsed}, nil
}

func (s *Static) Rate(_ context.Context, currency string) (decimal.Decimal, error) {
	code, err := NormalizeCurrency(currency)
	if err != nil {
		return decimal.Zero, errors.WithStack(err)
	}
	rate, ok := s.rates[code]
	if !ok {
		return decimal.Zero, errors.Wrapf(errs.NotFound, "%s rate", code)
	}
	return rate, nil
}
