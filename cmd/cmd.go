package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/internal/config"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the volt command with every sub-command registered.
func NewRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "volt",
		Long:          `Format and convert bitcoin wallet amounts in satoshis, bitcoin and fiat`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Initialize configuration and logger before any sub-command runs
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Parse(configFile)
			if err != nil {
				return errs.WithPublicMessage(err, "invalid configuration")
			}
			if err := logger.Init(conf.Logger); err != nil {
				return errs.WithPublicMessage(err, "invalid logger configuration")
			}
			return nil
		},
	}

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("separator", amount.DefaultSeparator, "digit group separator")
	flags.String("currency", config.DefaultCurrency, "fiat currency code, E.g. `USD` or `EUR`")

	// Bind flags to configuration
	config.BindPFlag("format.separator", flags.Lookup("separator"))
	config.BindPFlag("pricefeed.currency", flags.Lookup("currency"))

	// Register sub-commands
	cmd.AddCommand(
		NewVersionCommand(),
		NewFormatCommand(),
		NewConvertCommand(),
		NewRateCommand(),
		NewServeCommand(),
	)
	return cmd
}

// Execute runs the command line and exits with status 1 on failure.
func Execute(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		if e := new(errs.PublicError); errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, "Error:", e.Message())
			os.Exit(1)
		}
		logger.Error("Failed to execute command", slogx.Error(err))
		os.Exit(1)
	}
}
