// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract deploys and calls EVM contracts from compiled artifacts.
package contract

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/ethclient"
	"github.com/luxfi/lendctl/pkg/key"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// Backend is the RPC surface the client needs. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Account is a signing identity
type Account struct {
	Address common.Address
	key     *ecdsa.PrivateKey
}

func NewAccount(k *ecdsa.PrivateKey) Account {
	return Account{
		Address: common.Address(crypto.PubkeyToAddress(k.PublicKey)),
		key:     k,
	}
}

// CanSign reports whether the account holds a private key
func (a Account) CanSign() bool {
	return a.key != nil
}

// Client deploys and drives contracts on a single network
type Client struct {
	backend   Backend
	chainID   *big.Int
	source    key.Source
	artifacts *Artifacts
	log       luxlog.Logger
	closer    func()
}

// Dial connects to [rpcURL] and returns a client for it
func Dial(
	ctx context.Context,
	rpcURL string,
	source key.Source,
	artifacts *Artifacts,
	log luxlog.Logger,
) (*Client, error) {
	ethClient, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", rpcURL, err)
	}
	client, err := NewClient(ctx, ethClient, source, artifacts, log)
	if err != nil {
		ethClient.Close()
		return nil, err
	}
	client.closer = ethClient.Close
	return client, nil
}

// NewClient wraps an existing backend
func NewClient(
	ctx context.Context,
	backend Backend,
	source key.Source,
	artifacts *Artifacts,
	log luxlog.Logger,
) (*Client, error) {
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return &Client{
		backend:   backend,
		chainID:   chainID,
		source:    source,
		artifacts: artifacts,
		log:       log,
	}, nil
}

func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Close closes the client connection
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Signers resolves the configured signing accounts, in order
func (c *Client) Signers(_ context.Context) ([]Account, error) {
	if c.source == nil {
		return nil, key.ErrNoAccounts
	}
	keys, err := c.source.Keys()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w from %s", key.ErrNoAccounts, c.source.Name())
	}
	accounts := make([]Account, 0, len(keys))
	for _, k := range keys {
		accounts = append(accounts, NewAccount(k))
	}
	c.log.Debug("resolved signers",
		zap.String("source", c.source.Name()),
		zap.Int("count", len(accounts)),
	)
	return accounts, nil
}

// BalanceAt returns the latest balance of [address], in wei
func (c *Client) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	return c.backend.BalanceAt(ctx, address, nil)
}

func (c *Client) transactOpts(ctx context.Context, from Account) (*bind.TransactOpts, error) {
	if !from.CanSign() {
		return nil, fmt.Errorf("account %s has no private key", from.Address.Hex())
	}
	opts, err := bind.NewKeyedTransactorWithChainID(from.key, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}
