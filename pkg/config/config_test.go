// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/luxfi/lendctl/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "http://127.0.0.1:8545", cfg.Network.RPCEndpoint)
	require.True(t, cfg.BalanceCheckFatal())
}

func TestLoadOverrides(t *testing.T) {
	require := require.New(t)
	v := newViper()
	v.Set(constants.ConfigNetwork, "lux-testnet")
	v.Set(constants.ConfigRPC, "http://10.0.0.1:9650/ext/bc/C/rpc")
	v.Set(constants.ConfigTokenDecimals, 18)
	v.Set(constants.ConfigInterestRateBps, 725)
	v.Set(constants.ConfigBalanceCheck, constants.BalanceCheckWarn)
	v.Set(constants.ConfigTimeout, "90s")
	v.Set(constants.ConfigOut, "deployment.json")

	cfg, err := Load(v)
	require.NoError(err)
	require.Equal("lux-testnet", cfg.Network.Name)
	require.Equal(int64(96368), cfg.Network.ChainID)
	require.Equal("http://10.0.0.1:9650/ext/bc/C/rpc", cfg.Network.RPCEndpoint)
	require.Equal(uint8(18), cfg.Token.Decimals)
	require.Equal(uint64(725), cfg.InterestRateBps)
	require.Equal(uint64(constants.DefaultCollateralRatioBps), cfg.CollateralRatioBps)
	require.False(cfg.BalanceCheckFatal())
	require.Equal(90*time.Second, cfg.Timeout)
	require.Equal("deployment.json", cfg.OutFile)
}

func TestLoadConfigFile(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(os.WriteFile(path, []byte(`{"network":"zoo","token-symbol":"ZUSD","collateral-ratio-bps":20000}`), 0o600))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(v.ReadInConfig())
	// explicit values take precedence over the file
	v.Set(constants.ConfigTokenSymbol, "XUSD")

	cfg, err := Load(v)
	require.NoError(err)
	require.Equal(ZooMainnet.RPCEndpoint, cfg.Network.RPCEndpoint)
	require.Equal("XUSD", cfg.Token.Symbol)
	require.Equal(uint64(20000), cfg.CollateralRatioBps)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LENDCTL_NETWORK", "lux")
	t.Setenv("LENDCTL_INTEREST_RATE_BPS", "650")

	v := newViper()
	BindEnv(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, LuxMainnet.ChainID, cfg.Network.ChainID)
	require.Equal(t, uint64(650), cfg.InterestRateBps)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]interface{}
		err    error
		msg    string
	}{
		{
			name:   "unknown network without rpc",
			values: map[string]interface{}{constants.ConfigNetwork: "sepolia"},
			err:    constants.ErrNoRPCEndpoint,
		},
		{
			name:   "empty network",
			values: map[string]interface{}{constants.ConfigNetwork: " "},
			err:    constants.ErrUnknownNetwork,
		},
		{
			name:   "decimals too large",
			values: map[string]interface{}{constants.ConfigTokenDecimals: 78},
			msg:    "at most 77",
		},
		{
			name:   "zero interest rate",
			values: map[string]interface{}{constants.ConfigInterestRateBps: 0},
			err:    constants.ErrInvalidBasisPts,
		},
		{
			name:   "zero collateral ratio",
			values: map[string]interface{}{constants.ConfigCollateralRatioBps: 0},
			err:    constants.ErrInvalidBasisPts,
		},
		{
			name:   "bad balance check",
			values: map[string]interface{}{constants.ConfigBalanceCheck: "ignore"},
			msg:    "invalid balance check policy",
		},
		{
			name:   "empty signer",
			values: map[string]interface{}{constants.ConfigSigner: ""},
			msg:    "no signing account source",
		},
		{
			name:   "non positive timeout",
			values: map[string]interface{}{constants.ConfigTimeout: "0s"},
			msg:    "timeout must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			for k, val := range tt.values {
				v.Set(k, val)
			}
			_, err := Load(v)
			require.Error(t, err)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			}
			if tt.msg != "" {
				require.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestResolveNetwork(t *testing.T) {
	require := require.New(t)

	n, err := ResolveNetwork("Hardhat", "")
	require.NoError(err)
	require.Equal(Localhost.ChainID, n.ChainID)
	require.Equal("hardhat", n.Name)

	n, err = ResolveNetwork("devnet", "http://devnet:8545")
	require.NoError(err)
	require.Equal(Network{Name: "devnet", RPCEndpoint: "http://devnet:8545"}, n)

	// presets are not mutated by overrides
	_, err = ResolveNetwork("localhost", "http://other:8545")
	require.NoError(err)
	require.Equal("http://127.0.0.1:8545", Localhost.RPCEndpoint)

	_, err = ResolveNetwork("devnet", "")
	require.ErrorIs(err, constants.ErrUnknownNetwork)
}
