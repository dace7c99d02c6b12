// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploycmd

import (
	"github.com/luxfi/lendctl/pkg/config"
	"github.com/luxfi/lendctl/pkg/constants"
	"github.com/spf13/pflag"
)

// AddFlags registers the deployment flags on [f]. Flag names double as
// config file keys and, prefixed with LENDCTL_, as env var names.
func AddFlags(f *pflag.FlagSet) {
	d := config.Default()
	f.String(constants.ConfigNetwork, d.Network.Name, "target network (localhost, hardhat, lux, lux-testnet, zoo or a custom name with --rpc)")
	f.String(constants.ConfigRPC, "", "rpc endpoint, overrides the network preset")
	f.String(constants.ConfigSigner, d.SigningAccountSource, "signing account source: env, key:<hex>, file:<path> or mnemonic:<ENV_VAR>")
	f.String(constants.ConfigArtifacts, d.ArtifactsDir, "directory with compiled contract artifacts (hardhat or foundry)")
	f.String(constants.ConfigTokenName, d.Token.Name, "mock token name")
	f.String(constants.ConfigTokenSymbol, d.Token.Symbol, "mock token symbol")
	f.Uint8(constants.ConfigTokenDecimals, d.Token.Decimals, "mock token decimals")
	f.Uint64(constants.ConfigInterestRateBps, d.InterestRateBps, "interest rate of the supported token, in basis points")
	f.Uint64(constants.ConfigCollateralRatioBps, d.CollateralRatioBps, "collateral ratio of the supported token, in basis points")
	f.String(constants.ConfigBalanceCheck, d.BalanceCheck, "what a failed balance query does: fatal or warn")
	f.Duration(constants.ConfigTimeout, d.Timeout, "overall deployment timeout")
	f.String(constants.ConfigOut, "", "write the deployment summary to this file (.json, .yaml or .yml)")
	f.Bool(constants.ConfigVerifyToken, d.VerifyToken, "read the token metadata back after deploying")
}
