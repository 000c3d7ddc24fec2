package cmd

import (
	"fmt"

	"github.com/Zero-1729/volt-sub001/core/constants"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show volt version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), constants.Version)
			return errors.WithStack(err)
		},
	}
}
