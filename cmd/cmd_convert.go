package cmd

import (
	"fmt"

	"github.com/Zero-1729/volt-sub001/internal/config"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type convertCmdOptions struct {
	From    string
	To      string
	Rate    string
	Display bool
}

func NewConvertCommand() *cobra.Command {
	opts := &convertCmdOptions{}

	cmd := &cobra.Command{
		Use:     "convert <amount>",
		Short:   "Convert an amount between satoshis, bitcoin and fiat",
		Example: "  volt convert 0.5 --from btc --to sats\n  volt convert 20 --from fiat --to sats --rate 65000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.From, "from", amount.UnitSats.String(), "unit of the amount, `sats`, `btc` or `fiat`")
	flags.StringVar(&opts.To, "to", amount.UnitBTC.String(), "unit to convert to, `sats`, `btc` or `fiat`")
	flags.StringVar(&opts.Rate, "rate", "", "fixed exchange rate in fiat per bitcoin instead of the price feed")
	flags.BoolVar(&opts.Display, "display", false, "print the formatted amount with its unit")

	return cmd
}

func convertHandler(opts *convertCmdOptions, cmd *cobra.Command, args []string) error {
	from, err := amount.ParseUnit(opts.From)
	if err != nil {
		return publicError(err, "invalid --from")
	}
	to, err := amount.ParseUnit(opts.To)
	if err != nil {
		return publicError(err, "invalid --to")
	}
	value, err := parseAmount(args[0])
	if err != nil {
		return errors.WithStack(err)
	}

	uc, err := newUsecase(config.Load(), opts.Rate)
	if err != nil {
		return errors.WithStack(err)
	}
	conversion, err := uc.Convert(cmd.Context(), value, from, to, "")
	if err != nil {
		return publicError(err, "can't convert amount")
	}

	out := conversion.Amount.String()
	if opts.Display {
		out = conversion.Display.String()
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return errors.WithStack(err)
}
