// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	BaseDirName = ".lendctl"
	LogDir      = "logs"

	DefaultConfigFileName = "config"
	DefaultConfigFileType = "json"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	// DefaultDeployTimeout bounds the whole deployment sequence
	DefaultDeployTimeout = 10 * time.Minute

	// EnvPrefix is prepended to config keys when read from the environment,
	// e.g. LENDCTL_NETWORK, LENDCTL_RPC
	EnvPrefix = "LENDCTL"

	DefaultArtifactsDir = "artifacts"
	DefaultSignerSource = "env"

	ProjectContractName = "Project"
	MockTokenName       = "MockERC20"

	DefaultTokenName     = "Mock USDC"
	DefaultTokenSymbol   = "MUSDC"
	DefaultTokenDecimals = 6

	// basis points: 500 = 5.00%, 15000 = 150.00%
	DefaultInterestRateBps    = 500
	DefaultCollateralRatioBps = 15000

	AddSupportedTokenMethod = "addSupportedToken"

	BalanceCheckFatal = "fatal"
	BalanceCheckWarn  = "warn"
)

// config keys, shared by flags, env vars and the config file
const (
	ConfigNetwork            = "network"
	ConfigRPC                = "rpc"
	ConfigSigner             = "signer"
	ConfigArtifacts          = "artifacts"
	ConfigTokenName          = "token-name"
	ConfigTokenSymbol        = "token-symbol"
	ConfigTokenDecimals      = "token-decimals"
	ConfigInterestRateBps    = "interest-rate-bps"
	ConfigCollateralRatioBps = "collateral-ratio-bps"
	ConfigBalanceCheck       = "balance-check"
	ConfigTimeout            = "timeout"
	ConfigOut                = "out"
	ConfigVerifyToken        = "verify-token"
)
