package amount

import (
	"github.com/Cleverse/go-utilities/utils"
	"github.com/Zero-1729/volt-sub001/pkg/decimals"
	"github.com/shopspring/decimal"
)

var (
	// amounts in (0, subUnitThreshold) are shown with 8 fractional digits
	subUnitThreshold = decimals.MustFromString("0.1")

	// smallest sats value shown without approximation: 10^-8 sats
	minDisplaySats = decimals.PowerOfTen(-8)

	// smallest BTC value shown without approximation: 10^-11 BTC (one milli-satoshi)
	minDisplayBTC = decimals.PowerOfTen(-11)

	// smallest fiat value shown without approximation: one cent
	minDisplayFiat = decimals.PowerOfTen(-2)

	// sats above one bitcoin are shown with a magnitude suffix
	largeSatsThreshold = decimals.PowerOfTen(8)

	// FormatWithUnits applies magnitude suffixes only above one billion
	largeValueThreshold = decimals.PowerOfTen(9)
)

const (
	subUnitPlaces = 8
	fixedPlaces   = 2
)

// FormatSats formats an amount of satoshis.
//
//   - 0 < sats < 0.1: 8 fractional digits, or the approximation marker below 10^-8.
//   - sats > 100,000,000: magnitude suffix, e.g. "150.00 M".
//   - otherwise the digit-grouped value without trailing zeros; zero is "0".
func (f *Formatter) FormatSats(sats decimal.Decimal) string {
	switch {
	case sats.IsPositive() && sats.LessThan(subUnitThreshold):
		if sats.LessThan(minDisplaySats) {
			return f.approximate(sats)
		}
		return f.AddCommas(sats.StringFixed(subUnitPlaces))
	case sats.GreaterThan(largeSatsThreshold):
		return f.withSuffix(sats)
	default:
		return f.AddCommas(sats.String())
	}
}

// FormatBTC formats an amount of satoshis in bitcoin.
//
//   - 0 < btc < 0.1: 8 fractional digits, or the approximation marker below 10^-11.
//   - otherwise the digit-grouped value without trailing zeros.
func (f *Formatter) FormatBTC(sats decimal.Decimal) string {
	btc := SatsToBTC(sats)
	if btc.IsPositive() && btc.LessThan(subUnitThreshold) {
		if btc.LessThan(minDisplayBTC) {
			return f.approximate(btc)
		}
		fixed := btc.StringFixed(subUnitPlaces)
		if btc.Round(subUnitPlaces).IsZero() {
			// sub-satoshi amounts round to 0.00000000 and must not look like an empty balance
			return f.marker() + fixed
		}
		return f.AddCommas(fixed)
	}
	return f.AddCommas(btc.String())
}

// FormatWithUnits formats a large value with a magnitude suffix, e.g. 1,500,000,000 is "1.50 B".
// Values up to one billion are rendered as a plain 2-decimal string.
func (f *Formatter) FormatWithUnits(value decimal.Decimal) string {
	if value.GreaterThan(largeValueThreshold) {
		return f.withSuffix(value)
	}
	return value.StringFixed(fixedPlaces)
}

// FormatFiat formats a fiat amount with 2 fractional digits.
// Sub-cent amounts are prefixed with the approximation marker; zero is "0.00".
func (f *Formatter) FormatFiat(fiat decimal.Decimal) string {
	if fiat.IsPositive() && fiat.LessThan(minDisplayFiat) {
		return f.approximate(fiat)
	}
	return f.AddCommas(fiat.StringFixed(fixedPlaces))
}

// NormalizeFiat formats the fiat value of an amount of satoshis at the given rate (fiat per bitcoin).
// It is the only formatter that depends on an exchange rate.
func (f *Formatter) NormalizeFiat(sats, rate decimal.Decimal) string {
	if sats.IsZero() {
		return f.FormatFiat(decimal.Zero)
	}
	return f.FormatFiat(SatsToFiat(sats, rate))
}

func (f *Formatter) approximate(value decimal.Decimal) string {
	return f.marker() + value.StringFixed(fixedPlaces)
}

func (f *Formatter) marker() string {
	return utils.Default(f.approxMarker, DefaultApproxMarker)
}

// withSuffix divides value by 1000^e, e = floor(log1000(value)), and appends the e-th suffix.
// The exponent is found with exact decimal comparisons and clamped to the suffix table.
// value must be positive.
func (f *Formatter) withSuffix(value decimal.Decimal) string {
	suffixes := f.suffixes
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes
	}
	exp := 0
	for exp < len(suffixes)-1 && value.GreaterThanOrEqual(decimals.PowerOfTen(3*(exp+1))) {
		exp++
	}
	scaled := value.Shift(int32(-3 * exp)).StringFixed(fixedPlaces)
	if suffix := suffixes[exp]; suffix != "" {
		return scaled + " " + suffix
	}
	return scaled
}
