package decimals

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
)

func TestToDecimal(t *testing.T) {
	t.Run("overflow_decimals", func(t *testing.T) {
		assert.NotPanics(t, func() { ToDecimal(1, math.MaxInt32-1) }, "in-range decimals shouldn't panic")
		assert.NotPanics(t, func() { ToDecimal(1, math.MinInt32+1) }, "in-range decimals shouldn't panic")
		assert.Panics(t, func() { ToDecimal(1, math.MaxInt32+1) }, "out of range decimals should panic")
		assert.Panics(t, func() { ToDecimal(1, math.MinInt32) }, "out of range decimals should panic")
	})
	t.Run("unsupported_type", func(t *testing.T) {
		assert.Panics(t, func() { ToDecimal(1.5, 8) })
	})
	t.Run("check_supported_types", func(t *testing.T) {
		testcases := []struct {
			decimals uint16
			value    uint64
			expected string
		}{
			{0, 1, "1"},
			{3, 1, "0.001"},
			{8, 1, "0.00000001"},
			{8, 150000000, "1.5"},
			{11, 1, "0.00000000001"},
		}
		typesConv := []func(uint64) any{
			func(i uint64) any { return int(i) },
			func(i uint64) any { return int32(i) },
			func(i uint64) any { return int64(i) },
			func(i uint64) any { return uint(i) },
			func(i uint64) any { return uint32(i) },
			func(i uint64) any { return i },
			func(i uint64) any { return fmt.Sprint(i) },
			func(i uint64) any { return new(big.Int).SetUint64(i) },
			func(i uint64) any { return uint128.From64(i) },
		}
		for _, tc := range testcases {
			t.Run(fmt.Sprintf("%d_%d", tc.decimals, tc.value), func(t *testing.T) {
				for _, conv := range typesConv {
					input := conv(tc.value)
					t.Run(fmt.Sprintf("%T", input), func(t *testing.T) {
						actual := ToDecimal(input, tc.decimals)
						assert.Equal(t, tc.expected, actual.String())
					})
				}
			})
		}
	})
	t.Run("does_not_alias_big_int", func(t *testing.T) {
		v := big.NewInt(100)
		d := ToDecimal(v, 2)
		v.SetInt64(5)
		assert.Equal(t, "1", d.String())
	})

	testcases := []struct {
		decimals uint16
		value    any
		expected string
	}{
		{0, uint64(math.MaxUint64), "18446744073709551615"},
		{8, uint64(math.MaxUint64), "184467440737.09551615"},
		{11, uint64(math.MaxUint64), "184467440.73709551615"},
		{0, uint128.Max, "340282366920938463463374607431768211455"},
		{8, uint128.Max, "3402823669209384634633746074317.68211455"},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("%d_%v", tc.decimals, tc.value), func(t *testing.T) {
			actual := ToDecimal(tc.value, tc.decimals)
			assert.Equal(t, tc.expected, actual.String())
		})
	}
}

func TestMustFromString(t *testing.T) {
	assert.Equal(t, "0.00000001", MustFromString("0.00000001").String())
	assert.Panics(t, func() { MustFromString("") })
	assert.Panics(t, func() { MustFromString("abc") })
}
