package usecase

import (
	"context"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// Display formats sats in the given unit. The exchange rate is only fetched for fiat.
func (u *Usecase) Display(ctx context.Context, sats decimal.Decimal, unit amount.Unit, currency string) (amount.Display, error) {
	if err := validateAmount(sats); err != nil {
		return amount.Display{}, errors.WithStack(err)
	}

	switch unit {
	case amount.UnitSats, amount.UnitBTC:
		return u.formatter.Display(sats, displayUnit(unit, ""), decimal.Zero), nil
	case amount.UnitFiat:
		code, err := u.resolveCurrency(currency)
		if err != nil {
			return amount.Display{}, errors.WithStack(err)
		}
		rate, err := u.rate(ctx, code)
		if err != nil {
			return amount.Display{}, errors.WithStack(err)
		}
		return u.formatter.Display(sats, fiatDisplayUnit(code), rate), nil
	default:
		return amount.Display{}, errors.Wrapf(errs.Unsupported, "unit %q", unit)
	}
}

// Balance is an amount shown in every unit. Fiat is nil when no exchange rate is available.
type Balance struct {
	Sats amount.Display
	BTC  amount.Display
	Fiat *amount.Display
}

// DisplayAll formats sats in every unit at once.
// A missing exchange rate only drops the fiat display.
func (u *Usecase) DisplayAll(ctx context.Context, sats decimal.Decimal, currency string) (*Balance, error) {
	if err := validateAmount(sats); err != nil {
		return nil, errors.WithStack(err)
	}
	code, err := u.resolveCurrency(currency)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	balance := &Balance{
		Sats: u.formatter.Display(sats, amount.SatsDisplayUnit, decimal.Zero),
		BTC:  u.formatter.Display(sats, amount.BTCDisplayUnit, decimal.Zero),
	}

	rate, err := u.rate(ctx, code)
	if err != nil {
		logger.WarnContext(ctx, "Exchange rate is not available, omitting fiat balance",
			slogx.String("currency", code),
			slogx.Error(err),
		)
		return balance, nil
	}
	fiat := u.formatter.Display(sats, fiatDisplayUnit(code), rate)
	balance.Fiat = &fiat
	return balance, nil
}
