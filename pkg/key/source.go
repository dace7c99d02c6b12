// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package key resolves the accounts used to sign deployment transactions.
package key

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/luxfi/crypto"
)

// Environment variable names for key loading
const (
	// EnvPrivateKey contains a hex-encoded secp256k1 private key
	EnvPrivateKey = "LUX_PRIVATE_KEY"

	// EnvMnemonic contains a BIP39 mnemonic phrase
	EnvMnemonic = "LUX_MNEMONIC"
)

// DefaultMnemonicAccounts is how many accounts are derived from a mnemonic
const DefaultMnemonicAccounts = 10

// ErrNoAccounts is returned when a source yields no signing account
var ErrNoAccounts = errors.New("no signing account available")

// Source yields the ordered list of signing keys. The first key is the
// active deployer.
type Source interface {
	Name() string
	Keys() ([]*ecdsa.PrivateKey, error)
}

// ParseSource builds a Source from its textual form:
//
//	env               LUX_PRIVATE_KEY, then LUX_MNEMONIC
//	key:<hex>         a literal private key
//	file:<path>       a file holding a hex private key
//	mnemonic:<VAR>    a mnemonic read from the environment variable VAR
func ParseSource(value string) (Source, error) {
	value = strings.TrimSpace(value)
	kind, arg, _ := strings.Cut(value, ":")
	switch kind {
	case "", "env":
		return EnvSource{}, nil
	case "key":
		if arg == "" {
			return nil, fmt.Errorf("signer source %q: missing private key", kind)
		}
		return PrivateKeySource{Hex: arg}, nil
	case "file":
		if arg == "" {
			return nil, fmt.Errorf("signer source %q: missing path", kind)
		}
		return FileSource{Path: arg}, nil
	case "mnemonic":
		if arg == "" {
			arg = EnvMnemonic
		}
		return MnemonicEnvSource{Var: arg, Count: DefaultMnemonicAccounts}, nil
	default:
		return nil, fmt.Errorf("unknown signer source %q: expected env, key:<hex>, file:<path> or mnemonic:<VAR>", kind)
	}
}

// EnvSource loads keys from environment variables
// Priority: LUX_PRIVATE_KEY > LUX_MNEMONIC
type EnvSource struct{}

func (EnvSource) Name() string {
	return "environment"
}

func (EnvSource) Keys() ([]*ecdsa.PrivateKey, error) {
	if envKey := os.Getenv(EnvPrivateKey); envKey != "" {
		k, err := parseHexKey(envKey)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPrivateKey, err)
		}
		return []*ecdsa.PrivateKey{k}, nil
	}
	if os.Getenv(EnvMnemonic) != "" {
		return MnemonicEnvSource{Var: EnvMnemonic, Count: DefaultMnemonicAccounts}.Keys()
	}
	return nil, fmt.Errorf("%w: set %s or %s", ErrNoAccounts, EnvPrivateKey, EnvMnemonic)
}

// PrivateKeySource holds a single literal key
type PrivateKeySource struct {
	Hex string
}

func (PrivateKeySource) Name() string {
	return "private key"
}

func (s PrivateKeySource) Keys() ([]*ecdsa.PrivateKey, error) {
	k, err := parseHexKey(s.Hex)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return []*ecdsa.PrivateKey{k}, nil
}

// FileSource reads a hex private key from a file
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return "key file " + s.Path
}

func (s FileSource) Keys() ([]*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: key file %s not found", ErrNoAccounts, s.Path)
		}
		return nil, fmt.Errorf("failed to read key file %s: %w", s.Path, err)
	}
	k, err := parseHexKey(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid key in %s: %w", s.Path, err)
	}
	return []*ecdsa.PrivateKey{k}, nil
}

// MnemonicEnvSource derives Count accounts from the mnemonic held in Var
type MnemonicEnvSource struct {
	Var   string
	Count int
}

func (s MnemonicEnvSource) Name() string {
	return "mnemonic from " + s.Var
}

func (s MnemonicEnvSource) Keys() ([]*ecdsa.PrivateKey, error) {
	mnemonic := strings.TrimSpace(os.Getenv(s.Var))
	if mnemonic == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrNoAccounts, s.Var)
	}
	count := s.Count
	if count <= 0 {
		count = 1
	}
	return DeriveAccounts(mnemonic, count)
}

// Resolve loads the keys of [source] once and returns a Source serving them,
// so a missing or broken key is reported before anything touches the network
func Resolve(source Source) (Source, error) {
	keys, err := source.Keys()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s yielded no keys", ErrNoAccounts, source.Name())
	}
	return resolvedSource{name: source.Name(), keys: keys}, nil
}

type resolvedSource struct {
	name string
	keys []*ecdsa.PrivateKey
}

func (s resolvedSource) Name() string {
	return s.name
}

func (s resolvedSource) Keys() ([]*ecdsa.PrivateKey, error) {
	return s.keys, nil
}

func parseHexKey(s string) (*ecdsa.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	return crypto.HexToECDSA(s)
}
