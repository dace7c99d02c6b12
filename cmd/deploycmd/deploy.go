// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploycmd

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/lendctl/pkg/application"
	"github.com/luxfi/lendctl/pkg/cobrautils"
	"github.com/luxfi/lendctl/pkg/config"
	"github.com/luxfi/lendctl/pkg/contract"
	"github.com/luxfi/lendctl/pkg/deployer"
	"github.com/luxfi/lendctl/pkg/key"
	"github.com/luxfi/lendctl/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var app *application.Lendctl

// DialClient opens the network client for a run. Tests swap it for a
// simulated chain.
var DialClient = func(ctx context.Context, cfg config.Deploy, source key.Source) (*contract.Client, error) {
	return contract.Dial(ctx, cfg.Network.RPCEndpoint, source, contract.NewArtifacts(cfg.ArtifactsDir), app.Log)
}

// lendctl deploy
func NewCmd(injectedApp *application.Lendctl) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the lending protocol and a mock token",
		Long: `Deploys the Project lending contract and a MockERC20 token from compiled
artifacts, registers the token on the protocol with addSupportedToken and
prints a deployment summary.

Every run deploys fresh contracts. Nothing is skipped when a previous run
already deployed, and nothing is rolled back when a step fails.

The signing account comes from --signer:
  env               LUX_PRIVATE_KEY, or the first account of LUX_MNEMONIC (default)
  key:<hex>         a raw private key
  file:<path>       a file holding a hex private key
  mnemonic:<VAR>    accounts derived from the mnemonic in env var VAR

Examples:
  lendctl deploy
  lendctl deploy --network lux-testnet --signer file:./deployer.key
  lendctl deploy --rpc http://127.0.0.1:9650/ext/bc/C/rpc --out deployment.json`,
		RunE:         Run,
		Args:         cobrautils.ExactArgs(0),
		SilenceUsage: true,
	}
	AddFlags(cmd.Flags())
	return cmd
}

// Run loads the configuration for [cmd] and deploys
func Run(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(cmd, viper.GetViper())
	if err != nil {
		return err
	}
	return deploy(cmd.Context(), cfg, ux.Logger)
}

// LoadConfig binds the flags of [cmd] into [v] and reads the deployment config
func LoadConfig(cmd *cobra.Command, v *viper.Viper) (config.Deploy, error) {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Deploy{}, err
	}
	return config.Load(v)
}

func deploy(ctx context.Context, cfg config.Deploy, ul *ux.UserLog) error {
	source, err := key.ParseSource(cfg.SigningAccountSource)
	if err != nil {
		return fmt.Errorf("%w: %w", deployer.ErrAccountResolution, err)
	}
	source, err = key.Resolve(source)
	if err != nil {
		return fmt.Errorf("%w: %w", deployer.ErrAccountResolution, err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	app.Log.Info("connecting to network",
		zap.String("network", cfg.Network.Name),
		zap.String("rpc", cfg.Network.RPCEndpoint),
		zap.String("signer", source.Name()),
		zap.String("artifacts", cfg.ArtifactsDir),
	)
	client, err := DialClient(ctx, cfg, source)
	if err != nil {
		return fmt.Errorf("%w: %w", deployer.ErrNetworkQuery, err)
	}
	defer client.Close()
	checkChainID(cfg.Network, client.ChainID(), ul)

	result, err := deployer.New(client, deployer.OptionsFromConfig(cfg), ul, app.Log).Run(ctx)
	if err != nil {
		return err
	}

	ul.PrintToUser("")
	printDeployments(ul, result)

	if cfg.VerifyToken {
		if err := verifyToken(ctx, client, result.MockToken.Address, cfg.Token); err != nil {
			app.Log.Warn("token verification failed", zap.Error(err))
			ul.PrintToUser("Warning: %s", err)
		} else {
			ul.GreenCheckmarkToUser("Token metadata verified: %s (%s), %d decimals",
				cfg.Token.Name, cfg.Token.Symbol, cfg.Token.Decimals)
		}
	}

	if cfg.OutFile != "" {
		if err := deployer.WriteSummary(cfg.OutFile, result.Summary); err != nil {
			return err
		}
		ul.PrintToUser("Deployment summary written to %s", cfg.OutFile)
	}
	return nil
}

// checkChainID warns when the node does not serve the chain the preset names
func checkChainID(network config.Network, chainID *big.Int, ul *ux.UserLog) {
	if network.ChainID == 0 || chainID == nil {
		return
	}
	if chainID.Cmp(big.NewInt(network.ChainID)) != 0 {
		app.Log.Warn("chain ID mismatch",
			zap.String("network", network.Name),
			zap.Int64("expected", network.ChainID),
			zap.String("actual", chainID.String()),
		)
		ul.PrintToUser("Warning: network %s expects chain ID %d but the endpoint reports %s",
			network.Name, network.ChainID, chainID)
	}
}

func printDeployments(ul *ux.UserLog, result *deployer.Result) {
	rows := [][]string{}
	for _, d := range []*contract.Deployment{result.Project, result.MockToken} {
		rows = append(rows, []string{
			d.ContractName,
			d.Address.Hex(),
			d.TxHash.Hex(),
			strconv.FormatUint(d.BlockNumber, 10),
			strconv.FormatUint(d.GasUsed, 10),
		})
	}
	ul.PrintTable([]string{"Contract", "Address", "Tx Hash", "Block", "Gas Used"}, rows)
}

type tokenReader interface {
	TokenMetadata(ctx context.Context, address common.Address) (contract.TokenInfo, error)
}

// verifyToken reads the token metadata back and compares it with what was deployed
func verifyToken(ctx context.Context, reader tokenReader, address common.Address, want config.Token) error {
	info, err := reader.TokenMetadata(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to read token metadata at %s: %w", address.Hex(), err)
	}
	if info.Name != want.Name || info.Symbol != want.Symbol || info.Decimals != want.Decimals {
		return fmt.Errorf("token at %s reports %s (%s), %d decimals; expected %s (%s), %d decimals",
			address.Hex(), info.Name, info.Symbol, info.Decimals, want.Name, want.Symbol, want.Decimals)
	}
	return nil
}
