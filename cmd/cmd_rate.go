package cmd

import (
	"fmt"

	"github.com/Zero-1729/volt-sub001/internal/config"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func NewRateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rate [currency]",
		Short: "Show the price of one bitcoin from the price feed",
		Args:  cobra.MaximumNArgs(1),
		RunE:  rateHandler,
	}
}

func rateHandler(cmd *cobra.Command, args []string) error {
	uc, err := newUsecase(config.Load(), "")
	if err != nil {
		return errors.WithStack(err)
	}

	var currency string
	if len(args) > 0 {
		currency = args[0]
	}
	rate, err := uc.Rate(cmd.Context(), currency)
	if err != nil {
		return publicError(err, "can't get exchange rate")
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", rate.Rate, rate.Currency)
	return errors.WithStack(err)
}
