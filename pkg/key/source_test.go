// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/crypto"
	"github.com/stretchr/testify/require"
)

const (
	testMnemonic   = "test test test test test test test test test test test junk"
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress0   = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testAddress1   = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func TestDeriveAccounts(t *testing.T) {
	require := require.New(t)
	keys, err := DeriveAccounts(testMnemonic, 2)
	require.NoError(err)
	require.Len(keys, 2)
	require.Equal(testAddress0, crypto.PubkeyToAddress(keys[0].PublicKey).Hex())
	require.Equal(testAddress1, crypto.PubkeyToAddress(keys[1].PublicKey).Hex())
}

func TestDeriveAccountsInvalidMnemonic(t *testing.T) {
	_, err := DeriveAccounts("not a valid mnemonic", 1)
	require.Error(t, err)
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		input   string
		want    Source
		wantErr bool
	}{
		{input: "", want: EnvSource{}},
		{input: "env", want: EnvSource{}},
		{input: "key:0xabc", want: PrivateKeySource{Hex: "0xabc"}},
		{input: "file:/tmp/k", want: FileSource{Path: "/tmp/k"}},
		{input: "mnemonic:MY_WORDS", want: MnemonicEnvSource{Var: "MY_WORDS", Count: DefaultMnemonicAccounts}},
		{input: "mnemonic", want: MnemonicEnvSource{Var: EnvMnemonic, Count: DefaultMnemonicAccounts}},
		{input: "key:", wantErr: true},
		{input: "file:", wantErr: true},
		{input: "ledger", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSource(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEnvSource(t *testing.T) {
	t.Run("private key wins over mnemonic", func(t *testing.T) {
		t.Setenv(EnvPrivateKey, "0x"+testPrivateKey)
		t.Setenv(EnvMnemonic, testMnemonic)
		keys, err := EnvSource{}.Keys()
		require.NoError(t, err)
		require.Len(t, keys, 1)
		require.Equal(t, testAddress0, crypto.PubkeyToAddress(keys[0].PublicKey).Hex())
	})

	t.Run("mnemonic yields several accounts", func(t *testing.T) {
		t.Setenv(EnvPrivateKey, "")
		t.Setenv(EnvMnemonic, testMnemonic)
		keys, err := EnvSource{}.Keys()
		require.NoError(t, err)
		require.Len(t, keys, DefaultMnemonicAccounts)
		require.Equal(t, testAddress1, crypto.PubkeyToAddress(keys[1].PublicKey).Hex())
	})

	t.Run("nothing configured", func(t *testing.T) {
		t.Setenv(EnvPrivateKey, "")
		t.Setenv(EnvMnemonic, "")
		_, err := EnvSource{}.Keys()
		require.ErrorIs(t, err, ErrNoAccounts)
	})

	t.Run("malformed private key", func(t *testing.T) {
		t.Setenv(EnvPrivateKey, "zz")
		_, err := EnvSource{}.Keys()
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNoAccounts)
	})
}

func TestFileSource(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "deployer.key")
	require.NoError(os.WriteFile(path, []byte(testPrivateKey+"\n"), 0o600))

	keys, err := FileSource{Path: path}.Keys()
	require.NoError(err)
	require.Equal(testAddress0, crypto.PubkeyToAddress(keys[0].PublicKey).Hex())

	_, err = FileSource{Path: filepath.Join(dir, "missing.key")}.Keys()
	require.ErrorIs(err, ErrNoAccounts)

	// a directory exists but cannot be read as a key
	_, err = FileSource{Path: dir}.Keys()
	require.ErrorContains(err, "failed to read key file "+dir)
	require.NotErrorIs(err, ErrNoAccounts)
}

func TestMnemonicEnvSourceUnset(t *testing.T) {
	t.Setenv("LENDCTL_TEST_WORDS", "")
	_, err := MnemonicEnvSource{Var: "LENDCTL_TEST_WORDS", Count: 1}.Keys()
	require.ErrorIs(t, err, ErrNoAccounts)
}

func TestResolve(t *testing.T) {
	require := require.New(t)
	t.Setenv(EnvPrivateKey, testPrivateKey)

	resolved, err := Resolve(EnvSource{})
	require.NoError(err)
	require.Equal(EnvSource{}.Name(), resolved.Name())

	// the keys were read up front, later changes to the env do not matter
	t.Setenv(EnvPrivateKey, "")
	keys, err := resolved.Keys()
	require.NoError(err)
	require.Len(keys, 1)
	require.Equal(testAddress0, crypto.PubkeyToAddress(keys[0].PublicKey).Hex())

	_, err = Resolve(FileSource{Path: filepath.Join(t.TempDir(), "missing.key")})
	require.ErrorIs(err, ErrNoAccounts)
}
