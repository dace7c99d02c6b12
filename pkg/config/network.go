// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"strings"

	"github.com/luxfi/lendctl/pkg/constants"
)

// Network identifies the chain a deployment targets
type Network struct {
	Name        string
	ChainID     int64
	RPCEndpoint string
}

// Predefined network configurations
var (
	Localhost = Network{
		Name:        "localhost",
		ChainID:     31337,
		RPCEndpoint: "http://127.0.0.1:8545",
	}

	LuxMainnet = Network{
		Name:        "lux",
		ChainID:     96369,
		RPCEndpoint: "https://api.lux.network/ext/bc/C/rpc",
	}

	LuxTestnet = Network{
		Name:        "lux-testnet",
		ChainID:     96368,
		RPCEndpoint: "https://api.lux-test.network/ext/bc/C/rpc",
	}

	ZooMainnet = Network{
		Name:        "zoo",
		ChainID:     200200,
		RPCEndpoint: "https://api.zoo.network/ext/bc/zoo/rpc",
	}

	// Network lookup by name
	NetworksByName = map[string]*Network{
		"localhost":   &Localhost,
		"hardhat":     &Localhost,
		"lux":         &LuxMainnet,
		"lux-mainnet": &LuxMainnet,
		"lux-testnet": &LuxTestnet,
		"testnet":     &LuxTestnet,
		"zoo":         &ZooMainnet,
	}
)

// ResolveNetwork returns the network named [name], with [rpcOverride] replacing
// the preset endpoint when given. Unknown names are accepted as custom networks
// as long as an endpoint is provided; their chain ID is read from the node later.
func ResolveNetwork(name, rpcOverride string) (Network, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return Network{}, fmt.Errorf("%w: empty network name", constants.ErrUnknownNetwork)
	}
	preset, ok := NetworksByName[name]
	if !ok {
		if rpcOverride == "" {
			return Network{}, fmt.Errorf("%w %q: %w", constants.ErrUnknownNetwork, name, constants.ErrNoRPCEndpoint)
		}
		return Network{Name: name, RPCEndpoint: rpcOverride}, nil
	}
	network := *preset
	network.Name = name
	if rpcOverride != "" {
		network.RPCEndpoint = rpcOverride
	}
	return network, nil
}
