package httphandler

import (
	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/modules/display/usecase"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type HttpHandler struct {
	usecase *usecase.Usecase
}

func New(usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
	}
}

type displayResult struct {
	Value  string      `json:"value"`
	Unit   amount.Unit `json:"unit"`
	Symbol string      `json:"symbol"`
	Name   string      `json:"name"`
}

func toDisplayResult(d amount.Display) displayResult {
	return displayResult{
		Value:  d.Value,
		Unit:   d.Unit.Unit,
		Symbol: d.Unit.Symbol,
		Name:   d.Unit.Name,
	}
}

// validateAmount checks that a required query value is a bounded non-negative decimal.
func validateAmount(name, value string) error {
	if value == "" {
		return errors.Newf("'%s' is required", name)
	}
	if _, err := amount.Parse(value); err != nil {
		return errors.Newf("'%s' %s", name, err.Error())
	}
	return nil
}

// validateSats checks an amount given either in satoshis or in milli-satoshis.
func validateSats(sats, msat string) error {
	switch {
	case sats == "" && msat == "":
		return errors.New("'sats' or 'msat' is required")
	case sats != "" && msat != "":
		return errors.New("only one of 'sats' and 'msat' is allowed")
	case msat != "":
		if _, err := amount.ParseMilliSats(msat); err != nil {
			return errors.Newf("'msat' %s", err.Error())
		}
		return nil
	default:
		return validateAmount("sats", sats)
	}
}

// satsValue returns the satoshis of a query validated by [validateSats].
func satsValue(sats, msat string) decimal.Decimal {
	if msat != "" {
		return lo.Must(amount.ParseMilliSats(msat))
	}
	return lo.Must(amount.Parse(sats))
}

func validateUnit(name, value string) error {
	if _, err := amount.ParseUnit(value); err != nil {
		return errors.Newf("'%s' must be one of sats, btc or fiat", name)
	}
	return nil
}

// publicError exposes usecase errors the client can act on.
func publicError(err error, message string) error {
	switch {
	case errors.Is(err, errs.NotFound), errors.Is(err, errs.InvalidArgument), errors.Is(err, errs.Unsupported):
		return errs.WithPublicMessage(err, message)
	case errors.Is(err, errs.SomethingWentWrong):
		return errors.Mark(errs.NewPublicError("exchange rate is not available"), errs.SomethingWentWrong)
	default:
		return errors.Wrap(err, message)
	}
}
