package amount

import (
	"testing"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/decimals"
	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatoshiRoundTrip(t *testing.T) {
	for _, sats := range []int64{0, 1, 7, 1962, 3835, 2016011, 12510000, 229980951, 2_100_000_000_000_000} {
		d := decimal.NewFromInt(sats)
		btc := SatsToBTC(d)
		assert.True(t, BTCToSats(btc).Equal(d), "%d sats round trip through %s BTC", sats, btc)
	}
}

func TestSatsToBTC(t *testing.T) {
	assert.Equal(t, "2.29980951", SatsToBTC(decimal.NewFromInt(229980951)).String())
	assert.Equal(t, "0.00007", SatsToBTC(decimal.NewFromInt(7000)).String())
	assert.Equal(t, "0.00000000001", SatsToBTC(decimals.MustFromString("0.001")).String())
	assert.True(t, SatsPerBTC.Equal(decimal.NewFromInt(100_000_000)))
}

func TestFiatConversion(t *testing.T) {
	rate := decimal.NewFromInt(50000)

	t.Run("sats_to_fiat", func(t *testing.T) {
		assert.Equal(t, "50000", SatsToFiat(decimal.NewFromInt(100_000_000), rate).String())
		assert.Equal(t, "0.0005", SatsToFiat(decimal.NewFromInt(1), rate).String())
	})
	t.Run("fiat_to_sats", func(t *testing.T) {
		sats, err := FiatToSats(decimal.NewFromInt(25), rate)
		require.NoError(t, err)
		assert.Equal(t, "50000", sats.String())
	})
	t.Run("fiat_to_sats_repeating", func(t *testing.T) {
		sats, err := FiatToSats(decimal.NewFromInt(1), decimal.NewFromInt(3))
		require.NoError(t, err)
		assert.Equal(t, "33333333", RoundSats(sats).String())
	})
	t.Run("invalid_rate", func(t *testing.T) {
		for _, r := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
			_, err := FiatToSats(decimal.NewFromInt(1), r)
			assert.ErrorIs(t, err, errs.InvalidArgument)
		}
	})
}

func TestConvert(t *testing.T) {
	rate := decimal.NewFromInt(50000)
	testcases := []struct {
		value    string
		from     Unit
		to       Unit
		rate     decimal.Decimal
		expected string
	}{
		{"150000000", UnitSats, UnitBTC, decimal.Zero, "1.5"},
		{"1.5", UnitBTC, UnitSats, decimal.Zero, "150000000"},
		{"1", UnitBTC, UnitFiat, rate, "50000"},
		{"25", UnitFiat, UnitSats, rate, "50000"},
		{"25", UnitFiat, UnitBTC, rate, "0.0005"},
		{"42", UnitSats, UnitSats, decimal.Zero, "42"},
	}
	for _, tc := range testcases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			actual, err := Convert(decimals.MustFromString(tc.value), tc.from, tc.to, tc.rate)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual.String())
		})
	}

	t.Run("fiat_without_rate", func(t *testing.T) {
		_, err := Convert(decimal.NewFromInt(1), UnitSats, UnitFiat, decimal.Zero)
		assert.ErrorIs(t, err, errs.InvalidArgument)
		_, err = Convert(decimal.NewFromInt(1), UnitFiat, UnitSats, decimal.Zero)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
	t.Run("unsupported_unit", func(t *testing.T) {
		_, err := Convert(decimal.NewFromInt(1), Unit("eth"), UnitSats, rate)
		assert.ErrorIs(t, err, errs.Unsupported)
		_, err = Convert(decimal.NewFromInt(1), UnitSats, Unit("eth"), rate)
		assert.ErrorIs(t, err, errs.Unsupported)
	})
}

func TestFromMilliSats(t *testing.T) {
	assert.Equal(t, "1.5", FromMilliSats(uint128.From64(1500)).String())
	assert.Equal(t, "1", RoundSats(FromMilliSats(uint128.From64(1999))).String())
	assert.Equal(t, "340282366920938463463374607431768211.455", FromMilliSats(uint128.Max).String())
}
