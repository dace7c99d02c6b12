// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/luxfi/lendctl/pkg/contract"
	"github.com/stretchr/testify/mock"
)

// Chain is a mock implementation of deployer.Chain
type Chain struct {
	mock.Mock
}

func (m *Chain) Signers(ctx context.Context) ([]contract.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contract.Account), args.Error(1)
}

func (m *Chain) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *Chain) Deploy(
	ctx context.Context,
	from contract.Account,
	name string,
	constructorArgs ...interface{},
) (*contract.Deployment, error) {
	args := m.Called(ctx, from, name, constructorArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.Deployment), args.Error(1)
}

func (m *Chain) Transact(
	ctx context.Context,
	from contract.Account,
	deployment *contract.Deployment,
	method string,
	callArgs ...interface{},
) (*types.Receipt, error) {
	args := m.Called(ctx, from, deployment, method, callArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Receipt), args.Error(1)
}

// MethodOrder lists the mocked methods in the order they were called
func (m *Chain) MethodOrder() []string {
	calls := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		calls = append(calls, call.Method)
	}
	return calls
}
