package amount

import (
	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/decimals"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
)

const (
	// BitcoinDecimals is the number of satoshi digits in one bitcoin.
	BitcoinDecimals = 8

	// milli-satoshi digits in one satoshi
	milliSatsDecimals = 3
)

// SatsPerBTC is 10^8, the number of satoshis in one bitcoin.
var SatsPerBTC = decimal.New(btcutil.SatoshiPerBitcoin, 0)

// SatsToBTC converts satoshis to bitcoin without loss of precision.
func SatsToBTC(sats decimal.Decimal) decimal.Decimal {
	return sats.Shift(-BitcoinDecimals)
}

// BTCToSats converts bitcoin to satoshis without loss of precision.
func BTCToSats(btc decimal.Decimal) decimal.Decimal {
	return btc.Shift(BitcoinDecimals)
}

// SatsToFiat converts satoshis to fiat: rate × (sats / 10^8). The result is not rounded.
func SatsToFiat(sats, rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(SatsToBTC(sats))
}

// FiatToSats converts fiat to satoshis at the given rate. The rate must be positive.
// The result keeps sub-satoshi precision; use RoundSats before committing it to a payment.
func FiatToSats(fiat, rate decimal.Decimal) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, errors.Wrapf(errs.InvalidArgument, "exchange rate must be positive, got %s", rate)
	}
	return BTCToSats(fiat.DivRound(rate, decimals.DefaultDivPrecision)), nil
}

// Convert converts value from one unit to another, going through satoshis.
// rate is fiat per bitcoin and only required when either unit is fiat.
func Convert(value decimal.Decimal, from, to Unit, rate decimal.Decimal) (decimal.Decimal, error) {
	sats, err := ToSats(value, from, rate)
	if err != nil {
		return decimal.Zero, errors.WithStack(err)
	}
	result, err := FromSats(sats, to, rate)
	if err != nil {
		return decimal.Zero, errors.WithStack(err)
	}
	return result, nil
}

// ToSats converts a value expressed in unit to satoshis.
func ToSats(value decimal.Decimal, unit Unit, rate decimal.Decimal) (decimal.Decimal, error) {
	switch unit {
	case UnitSats:
		return value, nil
	case UnitBTC:
		return BTCToSats(value), nil
	case UnitFiat:
		sats, err := FiatToSats(value, rate)
		return sats, errors.WithStack(err)
	default:
		return decimal.Zero, errors.Wrapf(errs.Unsupported, "unit %q", unit)
	}
}

// FromSats converts satoshis to a value expressed in unit.
func FromSats(sats decimal.Decimal, unit Unit, rate decimal.Decimal) (decimal.Decimal, error) {
	switch unit {
	case UnitSats:
		return sats, nil
	case UnitBTC:
		return SatsToBTC(sats), nil
	case UnitFiat:
		if !rate.IsPositive() {
			return decimal.Zero, errors.Wrapf(errs.InvalidArgument, "exchange rate must be positive, got %s", rate)
		}
		return SatsToFiat(sats, rate), nil
	default:
		return decimal.Zero, errors.Wrapf(errs.Unsupported, "unit %q", unit)
	}
}

// FromMilliSats converts milli-satoshis, as reported by Lightning nodes, to satoshis.
func FromMilliSats(msat uint128.Uint128) decimal.Decimal {
	return decimals.ToDecimal(msat, milliSatsDecimals)
}

// RoundSats rounds an amount down to whole satoshis.
func RoundSats(sats decimal.Decimal) decimal.Decimal {
	return sats.Floor()
}
