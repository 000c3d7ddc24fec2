package decimals

import (
	"math"
	"math/big"
	"reflect"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

const (
	// DefaultDivPrecision is the number of fractional digits kept by non-exact divisions.
	DefaultDivPrecision = 36
)

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision
}

// MustFromString convert string to decimal.Decimal. Panic if error
// string must be a valid number, not NaN, Inf or empty string.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// ToDecimal converts an integer-like amount expressed in its smallest unit into a decimal.Decimal
// shifted by the given number of decimals. E.g. ToDecimal(uint64(150), 2) is 1.5
func ToDecimal[T constraints.Integer](ivalue any, decimals T) decimal.Decimal {
	value := new(big.Int)
	switch v := ivalue.(type) {
	case string:
		value.SetString(v, 10)
	case *big.Int:
		value.Set(v)
	case int64:
		value.SetInt64(v)
	case int, int8, int16, int32:
		value.SetInt64(reflect.ValueOf(v).Int())
	case uint64:
		value.SetUint64(v)
	case uint, uint8, uint16, uint32:
		value.SetUint64(reflect.ValueOf(v).Uint())
	case uint128.Uint128:
		value = v.Big()
	default:
		logger.Panic("ToDecimal: unsupported value type", slogx.Any("value", ivalue))
	}

	switch {
	case int64(decimals) > math.MaxInt32:
		logger.Panic("ToDecimal: decimals is too big, should be equal less than 2^31-1", slogx.Any("decimals", decimals))
	case int64(decimals) < math.MinInt32+1:
		logger.Panic("ToDecimal: decimals is too small, should be greater than -2^31", slogx.Any("decimals", decimals))
	}

	return decimal.NewFromBigInt(value, -int32(decimals))
}
