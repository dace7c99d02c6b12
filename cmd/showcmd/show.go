// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package showcmd

import (
	"github.com/luxfi/lendctl/pkg/cobrautils"
	"github.com/luxfi/lendctl/pkg/deployer"
	"github.com/luxfi/lendctl/pkg/ux"
	"github.com/spf13/cobra"
)

// lendctl show
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <summary-file>",
		Short: "Print a saved deployment summary",
		Long: `Prints a deployment summary written by 'lendctl deploy --out <file>'.
Both the JSON and the YAML format are understood.`,
		RunE:         show,
		Args:         cobrautils.ExactArgs(1),
		SilenceUsage: true,
	}
}

func show(_ *cobra.Command, args []string) error {
	summary, err := deployer.ReadSummary(args[0])
	if err != nil {
		return err
	}
	ux.Logger.PrintTable([]string{"Field", "Value"}, summaryRows(summary))
	return nil
}

func summaryRows(s deployer.Summary) [][]string {
	return [][]string{
		{"Network", s.Network},
		{"Project Contract", s.ProjectContract},
		{"Mock Token", s.MockToken},
		{"Deployer", s.Deployer},
		{"Timestamp", s.Timestamp},
	}
}
