// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/luxfi/lendctl/pkg/constants"
	"github.com/spf13/viper"
)

// Token describes the constructor arguments of the mock token
type Token struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
}

// Deploy is everything a deployment run needs. It is built once from flags,
// environment and config file, then passed down explicitly.
type Deploy struct {
	Network              Network
	SigningAccountSource string
	ArtifactsDir         string

	ProtocolContract string
	TokenContract    string
	Token            Token

	InterestRateBps    uint64
	CollateralRatioBps uint64

	// BalanceCheck is either constants.BalanceCheckFatal or constants.BalanceCheckWarn
	BalanceCheck string
	Timeout      time.Duration

	// OutFile is optional; the summary is only written to disk when set
	OutFile     string
	VerifyToken bool
}

// Default returns a Deploy populated with the stock values
func Default() Deploy {
	return Deploy{
		Network:              Localhost,
		SigningAccountSource: constants.DefaultSignerSource,
		ArtifactsDir:         constants.DefaultArtifactsDir,
		ProtocolContract:     constants.ProjectContractName,
		TokenContract:        constants.MockTokenName,
		Token: Token{
			Name:     constants.DefaultTokenName,
			Symbol:   constants.DefaultTokenSymbol,
			Decimals: constants.DefaultTokenDecimals,
		},
		InterestRateBps:    constants.DefaultInterestRateBps,
		CollateralRatioBps: constants.DefaultCollateralRatioBps,
		BalanceCheck:       constants.BalanceCheckFatal,
		Timeout:            constants.DefaultDeployTimeout,
		VerifyToken:        true,
	}
}

// SetDefaults registers the stock values on [v] so that unset flags,
// env vars and config entries fall back to them
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(constants.ConfigNetwork, d.Network.Name)
	v.SetDefault(constants.ConfigSigner, d.SigningAccountSource)
	v.SetDefault(constants.ConfigArtifacts, d.ArtifactsDir)
	v.SetDefault(constants.ConfigTokenName, d.Token.Name)
	v.SetDefault(constants.ConfigTokenSymbol, d.Token.Symbol)
	v.SetDefault(constants.ConfigTokenDecimals, d.Token.Decimals)
	v.SetDefault(constants.ConfigInterestRateBps, d.InterestRateBps)
	v.SetDefault(constants.ConfigCollateralRatioBps, d.CollateralRatioBps)
	v.SetDefault(constants.ConfigBalanceCheck, d.BalanceCheck)
	v.SetDefault(constants.ConfigTimeout, d.Timeout)
	v.SetDefault(constants.ConfigVerifyToken, d.VerifyToken)
}

// BindEnv makes [v] read LENDCTL_<KEY> variables, with dashes in keys
// turned into underscores (interest-rate-bps -> LENDCTL_INTEREST_RATE_BPS)
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads a Deploy out of [v].
// Priority is whatever [v] was set up with: flags > env vars > config file > defaults
func Load(v *viper.Viper) (Deploy, error) {
	cfg := Default()

	network, err := ResolveNetwork(v.GetString(constants.ConfigNetwork), v.GetString(constants.ConfigRPC))
	if err != nil {
		return Deploy{}, err
	}
	cfg.Network = network
	cfg.SigningAccountSource = v.GetString(constants.ConfigSigner)
	cfg.ArtifactsDir = v.GetString(constants.ConfigArtifacts)
	cfg.Token.Name = v.GetString(constants.ConfigTokenName)
	cfg.Token.Symbol = v.GetString(constants.ConfigTokenSymbol)

	decimals := v.GetUint(constants.ConfigTokenDecimals)
	if decimals > 77 {
		return Deploy{}, fmt.Errorf("token decimals must be at most 77, got %d", decimals)
	}
	cfg.Token.Decimals = uint8(decimals)

	cfg.InterestRateBps = v.GetUint64(constants.ConfigInterestRateBps)
	cfg.CollateralRatioBps = v.GetUint64(constants.ConfigCollateralRatioBps)
	cfg.BalanceCheck = v.GetString(constants.ConfigBalanceCheck)
	cfg.Timeout = v.GetDuration(constants.ConfigTimeout)
	cfg.OutFile = v.GetString(constants.ConfigOut)
	cfg.VerifyToken = v.GetBool(constants.ConfigVerifyToken)

	if err := cfg.Validate(); err != nil {
		return Deploy{}, err
	}
	return cfg, nil
}

func (c Deploy) Validate() error {
	if c.Network.Name == "" {
		return fmt.Errorf("%w: empty network name", constants.ErrUnknownNetwork)
	}
	if c.Network.RPCEndpoint == "" {
		return constants.ErrNoRPCEndpoint
	}
	if c.SigningAccountSource == "" {
		return fmt.Errorf("no signing account source configured")
	}
	if c.ProtocolContract == "" || c.TokenContract == "" {
		return fmt.Errorf("contract names must not be empty")
	}
	if c.InterestRateBps == 0 {
		return fmt.Errorf("interest rate: %w", constants.ErrInvalidBasisPts)
	}
	if c.CollateralRatioBps == 0 {
		return fmt.Errorf("collateral ratio: %w", constants.ErrInvalidBasisPts)
	}
	switch c.BalanceCheck {
	case constants.BalanceCheckFatal, constants.BalanceCheckWarn:
	default:
		return fmt.Errorf("invalid balance check policy %q: expected %q or %q",
			c.BalanceCheck, constants.BalanceCheckFatal, constants.BalanceCheckWarn)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// BalanceCheckFatal reports whether a failed balance query aborts the run
func (c Deploy) BalanceCheckFatal() bool {
	return c.BalanceCheck != constants.BalanceCheckWarn
}
