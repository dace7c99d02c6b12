// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common"
)

var ErrArtifactNotFound = errors.New("artifact not found")

// Artifact is a compiled contract: its ABI and creation bytecode
type Artifact struct {
	ContractName string
	SourceName   string
	ABI          abi.ABI
	Bytecode     []byte
}

// on-disk layout shared by Hardhat and Foundry. Hardhat stores bytecode as a
// hex string, Foundry as {"object": "0x..."}
type artifactFile struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

// Artifacts looks up compiled contracts by name under a build output directory
// (Hardhat's artifacts/ or Foundry's out/)
type Artifacts struct {
	dir   string
	cache map[string]*Artifact
}

func NewArtifacts(dir string) *Artifacts {
	return &Artifacts{
		dir:   dir,
		cache: map[string]*Artifact{},
	}
}

// Load returns the artifact for [name], either a bare contract name
// ("Project") or a fully qualified one ("contracts/Project.sol:Project")
func (a *Artifacts) Load(name string) (*Artifact, error) {
	if artifact, ok := a.cache[name]; ok {
		return artifact, nil
	}
	path, err := a.find(name)
	if err != nil {
		return nil, err
	}
	artifact, err := ParseArtifact(path)
	if err != nil {
		return nil, err
	}
	if artifact.ContractName == "" {
		artifact.ContractName = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	a.cache[name] = artifact
	return artifact, nil
}

func (a *Artifacts) find(name string) (string, error) {
	if source, contractName, ok := strings.Cut(name, ":"); ok {
		for _, candidate := range []string{
			filepath.Join(a.dir, source, contractName+".json"),
			filepath.Join(a.dir, filepath.Base(source), contractName+".json"),
		} {
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		return "", fmt.Errorf("%w: %s in %s", ErrArtifactNotFound, name, a.dir)
	}

	var matches []string
	want := name + ".json"
	err := filepath.WalkDir(a.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// hardhat keeps solc inputs there, never contract artifacts
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == want {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: artifacts directory %s does not exist (compile the contracts first)", ErrArtifactNotFound, a.dir)
		}
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s in %s", ErrArtifactNotFound, name, a.dir)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("multiple artifacts for contract %s, use a fully qualified name: %s",
			name, strings.Join(matches, ", "))
	}
}

// ParseArtifact reads a single artifact JSON file
func ParseArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid artifact %s: %w", path, err)
	}
	if len(file.ABI) == 0 {
		return nil, fmt.Errorf("invalid artifact %s: missing abi", path)
	}
	parsedABI, err := abi.JSON(bytes.NewReader(file.ABI))
	if err != nil {
		return nil, fmt.Errorf("invalid abi in %s: %w", path, err)
	}
	bytecodeHex, err := decodeBytecodeField(file.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}
	if strings.Contains(bytecodeHex, "__") {
		return nil, fmt.Errorf("artifact %s has unlinked library references", path)
	}
	bytecode := common.FromHex(bytecodeHex)
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("artifact %s has no bytecode (abstract contract or interface?)", path)
	}
	return &Artifact{
		ContractName: file.ContractName,
		SourceName:   file.SourceName,
		ABI:          parsedABI,
		Bytecode:     bytecode,
	}, nil
}

func decodeBytecodeField(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", err
	}
	return obj.Object, nil
}
