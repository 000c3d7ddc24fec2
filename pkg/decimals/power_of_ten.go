package decimals

import (
	"math"

	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// PowerOfTen returns the exact value of 10^n.
func PowerOfTen[T constraints.Integer](n T) decimal.Decimal {
	if int64(n) > math.MaxInt32 || int64(n) < math.MinInt32 {
		logger.Panic("PowerOfTen: exponent out of range", slogx.Any("n", n))
	}
	return decimal.New(1, int32(n))
}
