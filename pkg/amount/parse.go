package amount

import (
	"strings"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
)

const (
	// MaxExponent bounds the decimal exponent of parsed amounts, e.g. 1e30 or 1e-30.
	MaxExponent = 30

	// MaxDigits bounds the significant digits of parsed amounts.
	MaxDigits = 40

	maxInputLength = 64

	// 2^128-1 has 39 digits
	maxMilliSatsDigits = 39
)

var (
	ErrInvalidNumber = errors.Mark(errors.New("is not a valid number"), errs.InvalidArgument)
	ErrNegative      = errors.Mark(errors.New("must not be negative"), errs.InvalidArgument)
	ErrOutOfRange    = errors.Mark(errors.New("is out of range"), errs.InvalidArgument)
)

// Parse parses a user supplied non-negative amount.
// Inputs outside [MaxExponent] or [MaxDigits] are rejected with [ErrOutOfRange].
func Parse(value string) (decimal.Decimal, error) {
	if len(value) > maxInputLength {
		return decimal.Zero, errors.WithStack(ErrOutOfRange)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.WithStack(ErrInvalidNumber)
	}
	if d.IsNegative() {
		return decimal.Zero, errors.WithStack(ErrNegative)
	}
	if exp := d.Exponent(); exp > MaxExponent || exp < -MaxExponent || d.NumDigits() > MaxDigits {
		return decimal.Zero, errors.WithStack(ErrOutOfRange)
	}
	return d, nil
}

// ParseMilliSats parses a whole number of milli-satoshis, as Lightning nodes report balances,
// and returns the amount in satoshis.
func ParseMilliSats(value string) (decimal.Decimal, error) {
	if strings.HasPrefix(value, "-") {
		return decimal.Zero, errors.WithStack(ErrNegative)
	}
	if value == "" || strings.Trim(value, "0123456789") != "" {
		return decimal.Zero, errors.WithStack(ErrInvalidNumber)
	}
	value = strings.TrimLeft(value, "0")
	if value == "" {
		return decimal.Zero, nil
	}
	if len(value) > maxMilliSatsDigits {
		return decimal.Zero, errors.WithStack(ErrOutOfRange)
	}
	msat, err := uint128.FromString(value)
	if err != nil {
		return decimal.Zero, errors.WithStack(ErrOutOfRange)
	}
	return FromMilliSats(msat), nil
}
