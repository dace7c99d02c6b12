// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"

	"github.com/luxfi/erc20-go/erc20"
	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
)

// TokenInfo holds ERC20 token metadata
type TokenInfo struct {
	Address  common.Address
	Name     string
	Symbol   string
	Decimals uint8
}

// TokenMetadata reads name, symbol and decimals back from an ERC20 contract
func (c *Client) TokenMetadata(ctx context.Context, address common.Address) (TokenInfo, error) {
	token, err := erc20.NewGGToken(address, c.backend)
	if err != nil {
		return TokenInfo{}, err
	}
	opts := &bind.CallOpts{Context: ctx}
	name, err := token.Name(opts)
	if err != nil {
		return TokenInfo{}, err
	}
	symbol, err := token.Symbol(opts)
	if err != nil {
		return TokenInfo{}, err
	}
	decimals, err := token.Decimals(opts)
	if err != nil {
		return TokenInfo{}, err
	}
	return TokenInfo{
		Address:  address,
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
	}, nil
}
