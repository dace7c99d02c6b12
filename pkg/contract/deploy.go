// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/luxfi/lendctl/pkg/evm"
	"go.uber.org/zap"
)

var ErrNoCodeAfterDeploy = errors.New("no contract code at the deployed address")

// Deployment records a confirmed contract creation
type Deployment struct {
	ContractName    string
	Address         common.Address
	ConstructorArgs []interface{}
	TxHash          common.Hash
	BlockNumber     uint64
	GasUsed         uint64
}

// Deploy creates contract [name] from its artifact with [args] as constructor
// arguments, and blocks until the creation is confirmed and code exists at the
// new address
func (c *Client) Deploy(
	ctx context.Context,
	from Account,
	name string,
	args ...interface{},
) (*Deployment, error) {
	artifact, err := c.artifacts.Load(name)
	if err != nil {
		return nil, err
	}
	opts, err := c.transactOpts(ctx, from)
	if err != nil {
		return nil, err
	}
	address, tx, _, err := bind.DeployContract(opts, artifact.ABI, artifact.Bytecode, c.backend, args...)
	if err != nil {
		return nil, evm.TransactionError(nil, err, "failure deploying %s", name)
	}
	c.log.Debug("deployment submitted",
		zap.String("contract", name),
		zap.String("tx", tx.Hash().Hex()),
		zap.String("address", address.Hex()),
	)
	receipt, err := c.waitMined(ctx, tx)
	if err != nil {
		return nil, evm.TransactionError(tx, err, "failure waiting for %s deployment", name)
	}
	code, err := c.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, evm.TransactionError(tx, err, "failure reading %s code", name)
	}
	if len(code) == 0 {
		return nil, evm.TransactionError(tx, ErrNoCodeAfterDeploy, "%s deployment at %s", name, address.Hex())
	}
	return &Deployment{
		ContractName:    name,
		Address:         address,
		ConstructorArgs: args,
		TxHash:          tx.Hash(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		GasUsed:         receipt.GasUsed,
	}, nil
}

// Transact calls [method] on a deployed contract and blocks until the
// transaction is mined. A mined but failed transaction yields evm.ErrReverted.
func (c *Client) Transact(
	ctx context.Context,
	from Account,
	deployment *Deployment,
	method string,
	args ...interface{},
) (*types.Receipt, error) {
	if deployment == nil || deployment.Address == (common.Address{}) {
		return nil, fmt.Errorf("cannot call %s: contract not deployed", method)
	}
	artifact, err := c.artifacts.Load(deployment.ContractName)
	if err != nil {
		return nil, err
	}
	opts, err := c.transactOpts(ctx, from)
	if err != nil {
		return nil, err
	}
	bound := bind.NewBoundContract(deployment.Address, artifact.ABI, c.backend, c.backend, c.backend)
	tx, err := bound.Transact(opts, method, args...)
	if err != nil {
		return nil, evm.TransactionError(nil, err, "failure calling %s.%s", deployment.ContractName, method)
	}
	c.log.Debug("transaction submitted",
		zap.String("contract", deployment.ContractName),
		zap.String("method", method),
		zap.String("tx", tx.Hash().Hex()),
	)
	receipt, err := c.waitMined(ctx, tx)
	if err != nil {
		return nil, evm.TransactionError(tx, err, "%s.%s", deployment.ContractName, method)
	}
	return receipt, nil
}

func (c *Client) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, err
	}
	if err := evm.CheckReceipt(receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}
