package cmd

import (
	"fmt"

	"github.com/Zero-1729/volt-sub001/internal/config"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type formatCmdOptions struct {
	Unit string
	Rate string
	Msat bool
}

func NewFormatCommand() *cobra.Command {
	opts := &formatCmdOptions{}

	cmd := &cobra.Command{
		Use:     "format <amount>",
		Short:   "Format an amount of satoshis, or milli-satoshis with --msat, for display",
		Example: "  volt format 150000000\n  volt format 2500 --unit fiat --rate 65000 --currency EUR\n  volt format 1500 --msat",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return formatHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Unit, "unit", "u", amount.UnitSats.String(), "display unit, `sats`, `btc` or `fiat`")
	flags.StringVar(&opts.Rate, "rate", "", "fixed exchange rate in fiat per bitcoin instead of the price feed")
	flags.BoolVar(&opts.Msat, "msat", false, "the amount is a whole number of milli-satoshis")

	return cmd
}

func formatHandler(opts *formatCmdOptions, cmd *cobra.Command, args []string) error {
	unit, err := amount.ParseUnit(opts.Unit)
	if err != nil {
		return publicError(err, "invalid --unit")
	}
	parse := lo.Ternary(opts.Msat, parseMilliSats, parseAmount)
	sats, err := parse(args[0])
	if err != nil {
		return errors.WithStack(err)
	}

	uc, err := newUsecase(config.Load(), opts.Rate)
	if err != nil {
		return errors.WithStack(err)
	}
	display, err := uc.Display(cmd.Context(), sats, unit, "")
	if err != nil {
		return publicError(err, "can't format amount")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), display.String())
	return errors.WithStack(err)
}
