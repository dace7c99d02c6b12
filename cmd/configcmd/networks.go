// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"sort"
	"strconv"

	"github.com/luxfi/lendctl/pkg/cobrautils"
	"github.com/luxfi/lendctl/pkg/config"
	"github.com/luxfi/lendctl/pkg/ux"
	"github.com/spf13/cobra"
)

// lendctl config networks
func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the network presets",
		Args:  cobrautils.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			ux.Logger.PrintTable([]string{"Name", "Chain ID", "RPC Endpoint"}, networkRows())
			return nil
		},
	}
}

func networkRows() [][]string {
	names := make([]string, 0, len(config.NetworksByName))
	for name := range config.NetworksByName {
		names = append(names, name)
	}
	sort.Strings(names)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		n := config.NetworksByName[name]
		rows = append(rows, []string{name, strconv.FormatInt(n.ChainID, 10), n.RPCEndpoint})
	}
	return rows
}
