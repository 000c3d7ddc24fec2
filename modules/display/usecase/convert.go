package usecase

import (
	"context"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// fiat amounts are committed in cents
const fiatDecimals = 2

type Conversion struct {
	// Amount is the converted value in the target unit.
	Amount decimal.Decimal

	// Sats is the converted value in satoshis.
	Sats decimal.Decimal

	// Display is Amount formatted for the target unit.
	Display amount.Display
}

// Convert converts value between units as an amount entry screen commits it:
// bitcoin units are rounded down to whole satoshis and fiat is rounded to cents.
func (u *Usecase) Convert(ctx context.Context, value decimal.Decimal, from, to amount.Unit, currency string) (*Conversion, error) {
	if !from.IsSupported() {
		return nil, errors.Wrapf(errs.Unsupported, "unit %q", from)
	}
	if !to.IsSupported() {
		return nil, errors.Wrapf(errs.Unsupported, "unit %q", to)
	}
	if err := validateAmount(value); err != nil {
		return nil, errors.WithStack(err)
	}

	var (
		code string
		rate decimal.Decimal
	)
	if from == amount.UnitFiat || to == amount.UnitFiat {
		var err error
		if code, err = u.resolveCurrency(currency); err != nil {
			return nil, errors.WithStack(err)
		}
		if rate, err = u.rate(ctx, code); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	sats, err := amount.ToSats(value, from, rate)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if to != amount.UnitFiat {
		sats = amount.RoundSats(sats)
	}
	converted, err := amount.FromSats(sats, to, rate)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if to == amount.UnitFiat {
		converted = converted.Round(fiatDecimals)
	}

	return &Conversion{
		Amount:  converted,
		Sats:    sats,
		Display: u.formatter.Display(sats, displayUnit(to, code), rate),
	}, nil
}
