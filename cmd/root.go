// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/luxfi/filesystem/perms"
	"github.com/luxfi/lendctl/cmd/configcmd"
	"github.com/luxfi/lendctl/cmd/deploycmd"
	"github.com/luxfi/lendctl/cmd/showcmd"
	"github.com/luxfi/lendctl/pkg/application"
	"github.com/luxfi/lendctl/pkg/config"
	"github.com/luxfi/lendctl/pkg/constants"
	"github.com/luxfi/lendctl/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const logName = "lendctl"

var (
	app        *application.Lendctl
	logFactory luxlog.Factory

	logLevel string
	Version  = "0.1.0"
	cfgFile  string
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "lendctl",
		Long: `lendctl deploys the decentralized lending protocol to an EVM network.

Running lendctl without a command performs a deployment, the same as
'lendctl deploy':

  1. resolve the signing account and log its balance
  2. deploy the Project lending contract
  3. deploy a MockERC20 token (Mock USDC, MUSDC, 6 decimals)
  4. register the token with addSupportedToken(token, 500, 15000)
  5. print a summary of the deployment

Settings come from flags, then LENDCTL_* environment variables, then the
config file, then built-in defaults.

QUICK START:

  # Deploy to a local hardhat or anvil node with the key in LUX_PRIVATE_KEY
  lendctl

  # Deploy to testnet and keep the summary
  lendctl deploy --network lux-testnet --out deployment.json

  # Print a saved summary
  lendctl show deployment.json`,
		PersistentPreRunE: createApp,
		RunE:              deploycmd.Run,
		Args:              cobra.NoArgs,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lendctl/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level for the application")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	// the root command deploys too, so it takes the deploy flags
	deploycmd.AddFlags(rootCmd.Flags())

	// add sub commands
	rootCmd.AddCommand(deploycmd.NewCmd(app))
	rootCmd.AddCommand(showcmd.NewCmd())
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	// Adjust log level based on flags BEFORE any logging happens
	switch {
	case cmd.Flags().Changed("debug"):
		setLogLevel(luxlog.Level(-4))
	case cmd.Flags().Changed("verbose"):
		setLogLevel(luxlog.Level(0))
	case cmd.Flags().Changed("quiet"):
		setLogLevel(luxlog.Level(8))
	case logLevel != "":
		level, err := luxlog.ToLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		setLogLevel(level)
	}

	app.Setup(baseDir, log)
	return initConfig()
}

func setLogLevel(level luxlog.Level) {
	logFactory.SetLogLevel(logName, level)
	logFactory.SetDisplayLevel(logName, level)
}

func setupEnv() (string, error) {
	// Set base dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get user home directory %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(homeDir, constants.BaseDirName)

	// Create base dir if it doesn't exist
	err = os.MkdirAll(baseDir, perms.ReadWriteExecute)
	if err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel, _ = luxlog.ToLevel("INFO")

	// quiet by default, flags raise it in createApp
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// Register ux package as internal so caller tracking shows actual source, not the wrapper
	luxlog.RegisterInternalPackages("github.com/luxfi/lendctl/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make(logName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	// Store factory globally so we can adjust levels later
	logFactory = factory
	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig() error {
	config.SetDefaults(viper.GetViper())
	config.BindEnv(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed reading config file %s: %w", cfgFile, err)
		}
	} else {
		viper.AddConfigPath(app.GetBaseDir())
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
		// No config file is normal, most users rely on flags and env vars
		if app.ConfigFileExists() {
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed reading config file %s: %w", app.GetConfigFilePath(), err)
			}
		}
	}
	if used := viper.ConfigFileUsed(); used != "" {
		app.Log.Debug("using config file", "config-file", used)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// an interrupt cancels whatever the deployment is waiting on
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line [args] and returns the process exit code:
// 0 on success, 1 after printing the error to [stderr]
func run(ctx context.Context, args []string, stderr io.Writer) int {
	app = application.New()
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "\nERROR: %s\n", err)
		return 1
	}
	return 0
}
