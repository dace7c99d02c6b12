// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	ProjectABI = `[{"inputs":[{"internalType":"address","name":"token","type":"address"},{"internalType":"uint256","name":"interestRate","type":"uint256"},{"internalType":"uint256","name":"collateralRatio","type":"uint256"}],"name":"addSupportedToken","outputs":[],"stateMutability":"nonpayable","type":"function"}]`

	MockERC20ABI = `[{"inputs":[{"internalType":"string","name":"name","type":"string"},{"internalType":"string","name":"symbol","type":"string"},{"internalType":"uint8","name":"decimals","type":"uint8"}],"stateMutability":"nonpayable","type":"constructor"}]`

	// init code copying a one byte runtime (STOP) into place: every call succeeds
	AcceptAllBytecode = "0x6001600c60003960016000f300"

	// init code installing a runtime that reverts on every call
	RevertAllBytecode = "0x6005600c60003960056000f360006000fd"

	// init code that reverts, so the contract creation itself fails
	RevertOnDeployBytecode = "0x60006000fd"
)

// WriteHardhatArtifact writes artifacts/<source>/<name>.json the way Hardhat does
func WriteHardhatArtifact(t *testing.T, dir, source, name, abiJSON, bytecode string) string {
	t.Helper()
	content := map[string]interface{}{
		"_format":          "hh-sol-artifact-1",
		"contractName":     name,
		"sourceName":       source,
		"abi":              json.RawMessage(abiJSON),
		"bytecode":         bytecode,
		"deployedBytecode": "0x",
	}
	return writeArtifact(t, filepath.Join(dir, source), name, content)
}

// WriteFoundryArtifact writes out/<file>/<name>.json the way Foundry does
func WriteFoundryArtifact(t *testing.T, dir, file, name, abiJSON, bytecode string) string {
	t.Helper()
	content := map[string]interface{}{
		"abi":      json.RawMessage(abiJSON),
		"bytecode": map[string]string{"object": bytecode},
	}
	return writeArtifact(t, filepath.Join(dir, file), name, content)
}

// WriteLendingArtifacts writes Project and MockERC20 artifacts into [dir].
// [projectBytecode] lets tests swap in a reverting protocol contract.
func WriteLendingArtifacts(t *testing.T, dir, projectBytecode string) {
	t.Helper()
	WriteHardhatArtifact(t, dir, "contracts/Project.sol", "Project", ProjectABI, projectBytecode)
	WriteHardhatArtifact(t, dir, "contracts/mocks/MockERC20.sol", "MockERC20", MockERC20ABI, AcceptAllBytecode)
}

func writeArtifact(t *testing.T, dir, name string, content map[string]interface{}) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	data, err := json.MarshalIndent(content, "", "  ")
	require.NoError(t, err)
	path := filepath.Join(dir, name+".json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
