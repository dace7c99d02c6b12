// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/luxfi/lendctl/pkg/application"
	"github.com/luxfi/lendctl/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.Lendctl

// lendctl config
func NewCmd(injectedApp *application.Lendctl) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize lendctl configuration",
		Long: `The config command suite writes a starter config file and lists the
network presets deployments can target.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newNetworksCmd())
	return cmd
}
