package amount

import (
	"strings"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/cockroachdb/errors"
)

// Unit identifies which unit an amount is expressed or displayed in.
type Unit string

const (
	UnitSats Unit = "sats"
	UnitBTC  Unit = "btc"
	UnitFiat Unit = "fiat"
)

var unitAliases = map[string]Unit{
	"sats":    UnitSats,
	"sat":     UnitSats,
	"satoshi": UnitSats,
	"btc":     UnitBTC,
	"bitcoin": UnitBTC,
	"fiat":    UnitFiat,
}

// ParseUnit parses a unit name. Names are case-insensitive.
func ParseUnit(s string) (Unit, error) {
	unit, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", errors.Wrapf(errs.Unsupported, "unit %q", s)
	}
	return unit, nil
}

func (u Unit) IsSupported() bool {
	switch u {
	case UnitSats, UnitBTC, UnitFiat:
		return true
	}
	return false
}

func (u Unit) String() string {
	return string(u)
}

// DisplayUnit pairs a Unit with the symbol and name shown next to a formatted amount.
type DisplayUnit struct {
	Unit   Unit   `json:"unit"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var (
	SatsDisplayUnit = DisplayUnit{Unit: UnitSats, Symbol: "sats", Name: "Satoshis"}
	BTCDisplayUnit  = DisplayUnit{Unit: UnitBTC, Symbol: "₿", Name: "Bitcoin"}
)

// FiatDisplayUnit returns the display unit of a fiat currency.
// Symbol and name are supplied by the caller; the engine never derives them from a locale.
func FiatDisplayUnit(symbol, name string) DisplayUnit {
	return DisplayUnit{Unit: UnitFiat, Symbol: symbol, Name: name}
}
