// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	bip39 "github.com/luxfi/go-bip39"
)

// DeriveAccounts derives [count] keys along m/44'/60'/0'/0/i, the path
// used by Hardhat, Foundry and most Ethereum wallets
func DeriveAccounts(mnemonic string, count int) ([]*ecdsa.PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic phrase")
	}
	seed := bip39.NewSeed(mnemonic, "")

	change, err := deriveChange(seed)
	if err != nil {
		return nil, err
	}
	keys := make([]*ecdsa.PrivateKey, 0, count)
	for i := 0; i < count; i++ {
		addressKey, err := change.Derive(uint32(i))
		if err != nil {
			return nil, fmt.Errorf("failed to derive address %d: %w", i, err)
		}
		ecPrivKey, err := addressKey.ECPrivKey()
		if err != nil {
			return nil, fmt.Errorf("failed to get private key %d: %w", i, err)
		}
		keys = append(keys, ecPrivKey.ToECDSA())
	}
	return keys, nil
}

// deriveChange walks m/44'/60'/0'/0
func deriveChange(seed []byte) (*hdkeychain.ExtendedKey, error) {
	masterKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}
	purpose, err := masterKey.Derive(hdkeychain.HardenedKeyStart + 44)
	if err != nil {
		return nil, fmt.Errorf("failed to derive purpose: %w", err)
	}
	coinType, err := purpose.Derive(hdkeychain.HardenedKeyStart + 60)
	if err != nil {
		return nil, fmt.Errorf("failed to derive coin type: %w", err)
	}
	account, err := coinType.Derive(hdkeychain.HardenedKeyStart + 0)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account: %w", err)
	}
	change, err := account.Derive(0)
	if err != nil {
		return nil, fmt.Errorf("failed to derive change: %w", err)
	}
	return change, nil
}
