package cmd

import (
	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/internal/config"
	"github.com/Zero-1729/volt-sub001/modules/display"
	displayusecase "github.com/Zero-1729/volt-sub001/modules/display/usecase"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/Zero-1729/volt-sub001/pkg/pricefeed"
	"github.com/cockroachdb/errors"
	"github.com/samber/do/v2"
	"github.com/shopspring/decimal"
)

// newUsecase builds the display usecase from the configuration.
// A non-empty rate replaces the configured price feed with that fixed rate for the configured currency.
func newUsecase(conf config.Config, rate string) (*displayusecase.Usecase, error) {
	injector := do.New(display.Package)
	do.ProvideValue(injector, conf)

	if rate != "" {
		static, err := pricefeed.NewStatic(map[string]string{conf.Pricefeed.Currency: rate})
		if err != nil {
			return nil, errs.WithPublicMessage(err, "invalid --rate")
		}
		do.OverrideValue[pricefeed.Provider](injector, static)
	}

	uc, err := do.Invoke[*displayusecase.Usecase](injector)
	if err != nil {
		return nil, errs.WithPublicMessage(err, "can't initialize")
	}
	return uc, nil
}

// parseAmount parses a non-negative decimal amount argument.
func parseAmount(value string) (decimal.Decimal, error) {
	parsed, err := amount.Parse(value)
	if err != nil {
		return decimal.Zero, errs.WithPublicMessage(errors.Wrapf(err, "%q", value), "invalid amount")
	}
	return parsed, nil
}

// parseMilliSats parses a whole number of milli-satoshis into satoshis.
func parseMilliSats(value string) (decimal.Decimal, error) {
	sats, err := amount.ParseMilliSats(value)
	if err != nil {
		return decimal.Zero, errs.WithPublicMessage(errors.Wrapf(err, "%q", value), "invalid amount")
	}
	return sats, nil
}

// publicError exposes errors the user can act on, as the HTTP API does.
func publicError(err error, message string) error {
	if errors.Is(err, errs.NotFound) || errors.Is(err, errs.InvalidArgument) || errors.Is(err, errs.Unsupported) {
		return errs.WithPublicMessage(err, message)
	}
	return errors.Wrap(err, message)
}
