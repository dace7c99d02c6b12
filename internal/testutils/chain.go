// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"crypto/ecdsa"
	"math/big"
	"testing"
	"time"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/luxfi/geth/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

// SimulatedChain is an in-process EVM that mines a block every
// few milliseconds, so code waiting for receipts makes progress
type SimulatedChain struct {
	Backend  *simulated.Backend
	Client   simulated.Client
	Key      *ecdsa.PrivateKey
	KeyHex   string
	Deployer common.Address
}

// NewSimulatedChain starts a chain with one funded deployer account.
// The chain is stopped when the test ends.
func NewSimulatedChain(t *testing.T) *SimulatedChain {
	t.Helper()
	k, err := crypto.GenerateKey()
	require.NoError(t, err)
	deployer := common.Address(crypto.PubkeyToAddress(k.PublicKey))

	funds, _ := new(big.Int).SetString("1000000000000000000000", 10)
	backend := simulated.NewBackend(types.GenesisAlloc{
		deployer: {Balance: funds},
	})

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				backend.Commit()
			case <-done:
				return
			}
		}
	}()
	t.Cleanup(func() {
		close(done)
		<-stopped
		_ = backend.Close()
	})

	return &SimulatedChain{
		Backend:  backend,
		Client:   backend.Client(),
		Key:      k,
		KeyHex:   common.Bytes2Hex(crypto.FromECDSA(k)),
		Deployer: deployer,
	}
}
