package amount

import "github.com/shopspring/decimal"

// Display is a formatted amount together with the unit it is shown in.
type Display struct {
	Value string      `json:"value"`
	Unit  DisplayUnit `json:"unit"`
}

func (d Display) String() string {
	return d.Value + " " + d.Unit.Symbol
}

// Display formats sats in the given display unit. rate is only used by fiat units.
// Unsupported units are shown in satoshis.
func (f *Formatter) Display(sats decimal.Decimal, unit DisplayUnit, rate decimal.Decimal) Display {
	switch unit.Unit {
	case UnitBTC:
		return Display{Value: f.FormatBTC(sats), Unit: unit}
	case UnitFiat:
		return Display{Value: f.NormalizeFiat(sats, rate), Unit: unit}
	case UnitSats:
		return Display{Value: f.FormatSats(sats), Unit: unit}
	default:
		return Display{Value: f.FormatSats(sats), Unit: SatsDisplayUnit}
	}
}
