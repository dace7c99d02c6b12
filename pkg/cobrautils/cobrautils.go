// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CommandSuiteUsage is the RunE of commands that only group subcommands
func CommandSuiteUsage(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q\n\n%s", args[0], cmd.CommandPath(), cmd.UsageString())
	}
	return cmd.Help()
}

// ExactArgs is cobra.ExactArgs with the command usage appended to the error
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%q requires %d argument(s), received %d\n\n%s",
				cmd.CommandPath(), n, len(args), cmd.UsageString())
		}
		return nil
	}
}
