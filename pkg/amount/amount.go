// Package amount converts bitcoin amounts between satoshis, bitcoin and fiat and formats them for display.
//
// Amounts are non-negative shopspring decimals, in satoshis unless stated otherwise. Every function is
// pure; only NormalizeFiat and the fiat conversions take an exchange rate (fiat per bitcoin).
package amount

import "github.com/shopspring/decimal"

// FormatSats formats satoshis with the default formatter. See [Formatter.FormatSats].
func FormatSats(sats decimal.Decimal) string {
	return defaultFormatter.FormatSats(sats)
}

// FormatBTC formats satoshis in bitcoin with the default formatter. See [Formatter.FormatBTC].
func FormatBTC(sats decimal.Decimal) string {
	return defaultFormatter.FormatBTC(sats)
}

// FormatWithUnits formats a large value with a magnitude suffix. See [Formatter.FormatWithUnits].
func FormatWithUnits(value decimal.Decimal) string {
	return defaultFormatter.FormatWithUnits(value)
}

// FormatFiat formats a fiat amount with the default formatter. See [Formatter.FormatFiat].
func FormatFiat(fiat decimal.Decimal) string {
	return defaultFormatter.FormatFiat(fiat)
}

// NormalizeFiat formats the fiat value of sats at rate. See [Formatter.NormalizeFiat].
func NormalizeFiat(sats, rate decimal.Decimal) string {
	return defaultFormatter.NormalizeFiat(sats, rate)
}
