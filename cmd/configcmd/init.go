// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/filesystem/perms"
	"github.com/luxfi/lendctl/pkg/cobrautils"
	"github.com/luxfi/lendctl/pkg/config"
	"github.com/luxfi/lendctl/pkg/constants"
	"github.com/luxfi/lendctl/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	initForce bool
	initPath  string
)

// lendctl config init
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file holding the default deployment settings",
		Long: `Writes the default deployment settings to $HOME/.lendctl/config.json, or to
--path. Edit the file to change what 'lendctl deploy' uses when no flag or
LENDCTL_* environment variable overrides a value.`,
		Args:         cobrautils.ExactArgs(0),
		RunE:         runInit,
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&initPath, "path", "", "config file to write (default is $HOME/.lendctl/config.json)")
	cmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	return cmd
}

func runInit(_ *cobra.Command, _ []string) error {
	path := initPath
	if path == "" {
		path = app.GetConfigFilePath()
	}
	if err := writeDefaultConfig(path, initForce); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Config written to %s", path)
	return nil
}

func writeDefaultConfig(path string, force bool) error {
	v := viper.New()
	// rpc is left out so the endpoint follows the selected network preset
	config.SetDefaults(v)
	if filepath.Ext(path) == "" {
		v.SetConfigType(constants.DefaultConfigFileType)
	}
	if err := os.MkdirAll(filepath.Dir(path), perms.ReadWriteExecute); err != nil {
		return err
	}
	if force {
		return v.WriteConfigAs(path)
	}
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("%w (use --force to overwrite)", err)
	}
	return nil
}
