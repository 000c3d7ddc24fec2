package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

type Rate struct {
	Currency string
	Rate     decimal.Decimal
}

// Rate returns the price of one bitcoin in the given currency.
func (u *Usecase) Rate(ctx context.Context, currency string) (*Rate, error) {
	code, err := u.resolveCurrency(currency)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	rate, err := u.rate(ctx, code)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Rate{Currency: code, Rate: rate}, nil
}
