// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/lendctl/internal/testutils"
	"github.com/luxfi/lendctl/pkg/contract"
	"github.com/luxfi/lendctl/pkg/key"
	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func newSimulatedClient(t *testing.T, projectBytecode string) (*contract.Client, *testutils.SimulatedChain) {
	t.Helper()
	chain := testutils.NewSimulatedChain(t)
	dir := t.TempDir()
	testutils.WriteLendingArtifacts(t, dir, projectBytecode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := contract.NewClient(ctx, chain.Client, key.PrivateKeySource{Hex: chain.KeyHex},
		contract.NewArtifacts(dir), luxlog.NewNoOpLogger())
	require.NoError(t, err)
	return client, chain
}

func TestRunOnSimulatedChain(t *testing.T) {
	require := require.New(t)
	client, chain := newSimulatedClient(t, testutils.AcceptAllBytecode)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var out bytes.Buffer
	first, err := New(client, defaultOptions(), testUserLog(&out), luxlog.NewNoOpLogger()).Run(ctx)
	require.NoError(err)
	require.Equal(chain.Deployer, first.Deployer.Address)
	require.NotEqual(common.Address{}, first.Project.Address)
	require.NotEqual(common.Address{}, first.MockToken.Address)
	require.NotEqual(first.Project.Address, first.MockToken.Address)
	require.Equal(first.Project.Address.Hex(), first.Summary.ProjectContract)
	require.Equal(first.MockToken.Address.Hex(), first.Summary.MockToken)
	require.Contains(out.String(), "Account balance: 1000000000000000000000 (1,000.0000)")

	_, err = time.Parse(time.RFC3339, first.Summary.Timestamp)
	require.NoError(err)

	// a second run is not idempotent: it deploys a fresh pair of contracts
	second, err := New(client, defaultOptions(), testUserLog(&bytes.Buffer{}), luxlog.NewNoOpLogger()).Run(ctx)
	require.NoError(err)
	require.NotEqual(first.Project.Address, second.Project.Address)
	require.NotEqual(first.MockToken.Address, second.MockToken.Address)
}

func TestRunOnSimulatedChainConfigureReverts(t *testing.T) {
	require := require.New(t)
	client, _ := newSimulatedClient(t, testutils.RevertAllBytecode)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var out bytes.Buffer
	_, err := New(client, defaultOptions(), testUserLog(&out), luxlog.NewNoOpLogger()).Run(ctx)
	require.ErrorIs(err, ErrTransaction)
	require.ErrorContains(err, "Project.addSupportedToken")
	requireInOrder(t, out.String(), "Project contract deployed to: 0x", "Mock Token deployed to: 0x")
}
