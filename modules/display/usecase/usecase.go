package usecase

import (
	"context"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/Zero-1729/volt-sub001/pkg/pricefeed"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

type Usecase struct {
	formatter *amount.Formatter
	rates     pricefeed.Provider
	currency  string
}

// New creates the display usecase. currency is used when a call doesn't name one.
func New(formatter *amount.Formatter, rates pricefeed.Provider, currency string) *Usecase {
	return &Usecase{
		formatter: formatter,
		rates:     rates,
		currency:  currency,
	}
}

func (u *Usecase) Formatter() *amount.Formatter {
	return u.formatter
}

// resolveCurrency returns the normalized currency code, or the default currency when empty.
func (u *Usecase) resolveCurrency(currency string) (string, error) {
	if currency == "" {
		currency = u.currency
	}
	code, err := pricefeed.NormalizeCurrency(currency)
	return code, errors.WithStack(err)
}

func (u *Usecase) rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	rate, err := u.rates.Rate(ctx, currency)
	if err != nil {
		if errors.Is(err, errs.NotFound) || errors.Is(err, errs.InvalidArgument) {
			return decimal.Zero, errors.WithStack(err)
		}
		return decimal.Zero, errors.Mark(errors.Wrapf(err, "can't fetch %s exchange rate", currency), errs.SomethingWentWrong)
	}
	return rate, nil
}

func fiatDisplayUnit(currency string) amount.DisplayUnit {
	return amount.FiatDisplayUnit(currency, currency)
}

func displayUnit(unit amount.Unit, currency string) amount.DisplayUnit {
	switch unit {
	case amount.UnitBTC:
		return amount.BTCDisplayUnit
	case amount.UnitFiat:
		return fiatDisplayUnit(currency)
	default:
		return amount.SatsDisplayUnit
	}
}

func validateAmount(value decimal.Decimal) error {
	if value.IsNegative() {
		return errors.Wrapf(errs.InvalidArgument, "amount must not be negative, got %s", value)
	}
	return nil
}
