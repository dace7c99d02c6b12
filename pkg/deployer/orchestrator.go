// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deployer runs the lending protocol deployment sequence: deploy the
// protocol contract, deploy the mock token, register the token on the
// protocol and report the result.
package deployer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/luxfi/lendctl/pkg/config"
	"github.com/luxfi/lendctl/pkg/constants"
	"github.com/luxfi/lendctl/pkg/contract"
	"github.com/luxfi/lendctl/pkg/evm"
	"github.com/luxfi/lendctl/pkg/key"
	"github.com/luxfi/lendctl/pkg/ux"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// Chain is the network client the orchestrator drives. Deploy and Transact
// block until the transaction is confirmed. *contract.Client implements it.
type Chain interface {
	Signers(ctx context.Context) ([]contract.Account, error)
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)
	Deploy(ctx context.Context, from contract.Account, name string, args ...interface{}) (*contract.Deployment, error)
	Transact(
		ctx context.Context,
		from contract.Account,
		deployment *contract.Deployment,
		method string,
		args ...interface{},
	) (*types.Receipt, error)
}

// BasisPoints is an integer amount of 1/100 of a percent
type BasisPoints uint64

func (b BasisPoints) Big() *big.Int {
	return new(big.Int).SetUint64(uint64(b))
}

// String renders 500 as 5.00% and 15000 as 150.00%
func (b BasisPoints) String() string {
	return fmt.Sprintf("%d.%02d%%", b/100, b%100)
}

type Options struct {
	NetworkName      string
	ProtocolContract string
	TokenContract    string
	Token            config.Token
	InterestRate     BasisPoints
	CollateralRatio  BasisPoints
	// when false a failed balance query is logged and the run continues
	BalanceQueryFatal bool
}

func OptionsFromConfig(cfg config.Deploy) Options {
	return Options{
		NetworkName:       cfg.Network.Name,
		ProtocolContract:  cfg.ProtocolContract,
		TokenContract:     cfg.TokenContract,
		Token:             cfg.Token,
		InterestRate:      BasisPoints(cfg.InterestRateBps),
		CollateralRatio:   BasisPoints(cfg.CollateralRatioBps),
		BalanceQueryFatal: cfg.BalanceCheckFatal(),
	}
}

// Result is what a successful run hands back to callers, e.g. test setup
type Result struct {
	Project       *contract.Deployment
	MockToken     *contract.Deployment
	Deployer      contract.Account
	ConfigReceipt *types.Receipt
	Summary       Summary
}

type Orchestrator struct {
	chain Chain
	opts  Options
	ul    *ux.UserLog
	log   luxlog.Logger
	now   func() time.Time
}

func New(chain Chain, opts Options, ul *ux.UserLog, log luxlog.Logger) *Orchestrator {
	return &Orchestrator{
		chain: chain,
		opts:  opts,
		ul:    ul,
		log:   log,
		now:   time.Now,
	}
}

// Run executes the sequence once. It is not idempotent: every run creates new
// contracts at new addresses. Nothing already deployed is rolled back on failure.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	o.ul.PrintToUser("Deploying Decentralized Lending Protocol...")

	deployer, err := o.resolveAccount(ctx)
	if err != nil {
		return nil, err
	}
	o.ul.PrintToUser("Deploying contracts with the account: %s", deployer.Address.Hex())

	if err := o.reportBalance(ctx, deployer); err != nil {
		return nil, err
	}

	project, err := o.deploy(ctx, StepDeployProtocol, deployer, o.opts.ProtocolContract)
	if err != nil {
		return nil, err
	}
	if err := recordAddress(StepRecordProtocol, project); err != nil {
		return nil, err
	}
	o.ul.PrintToUser("Project contract deployed to: %s", project.Address.Hex())

	token, err := o.deploy(ctx, StepDeployToken, deployer, o.opts.TokenContract,
		o.opts.Token.Name, o.opts.Token.Symbol, o.opts.Token.Decimals)
	if err != nil {
		return nil, err
	}
	if err := recordAddress(StepRecordToken, token); err != nil {
		return nil, err
	}
	o.ul.PrintToUser("Mock Token deployed to: %s", token.Address.Hex())

	receipt, err := o.configure(ctx, deployer, project, token)
	if err != nil {
		return nil, err
	}
	o.ul.PrintToUser("Mock token added to lending protocol")

	summary := Summary{
		Network:         o.opts.NetworkName,
		ProjectContract: project.Address.Hex(),
		MockToken:       token.Address.Hex(),
		Deployer:        deployer.Address.Hex(),
		Timestamp:       FormatTimestamp(o.now()),
	}
	o.ul.PrintToUser("Deployment completed successfully!")
	o.ul.PrintToUser("Deployment Info: %s", summary.JSON())
	o.log.Info("deployment completed",
		zap.String("network", summary.Network),
		zap.String("project", summary.ProjectContract),
		zap.String("token", summary.MockToken),
	)

	return &Result{
		Project:       project,
		MockToken:     token,
		Deployer:      deployer,
		ConfigReceipt: receipt,
		Summary:       summary,
	}, nil
}

func (o *Orchestrator) resolveAccount(ctx context.Context) (contract.Account, error) {
	signers, err := o.chain.Signers(ctx)
	if err != nil {
		return contract.Account{}, &StepError{Step: StepResolveAccount, Kind: ErrAccountResolution, Err: err}
	}
	if len(signers) == 0 {
		return contract.Account{}, &StepError{Step: StepResolveAccount, Kind: ErrAccountResolution, Err: key.ErrNoAccounts}
	}
	return signers[0], nil
}

func (o *Orchestrator) reportBalance(ctx context.Context, deployer contract.Account) error {
	balance, err := o.chain.BalanceAt(ctx, deployer.Address)
	if err != nil {
		stepErr := &StepError{Step: StepQueryBalance, Kind: ErrNetworkQuery, Err: err}
		if o.opts.BalanceQueryFatal {
			return stepErr
		}
		o.log.Warn("continuing without deployer balance", zap.Error(stepErr))
		o.ul.PrintToUser("Account balance: unavailable (%v)", err)
		return nil
	}
	o.ul.PrintToUser("Account balance: %s (%s)", balance.String(), evm.FormatEther(balance, 4))
	if balance.Sign() == 0 {
		o.log.Warn("deployer account has no funds", zap.String("address", deployer.Address.Hex()))
	}
	return nil
}

func (o *Orchestrator) deploy(
	ctx context.Context,
	step Step,
	from contract.Account,
	name string,
	args ...interface{},
) (*contract.Deployment, error) {
	tracker := ux.NewStepTracker(o.ul)
	tracker.Start("Deploying " + name)
	deployment, err := o.chain.Deploy(ctx, from, name, args...)
	if err != nil {
		tracker.Failed(err.Error())
		return nil, &StepError{Step: step, Kind: ErrDeployment, Err: err}
	}
	tracker.Complete("tx " + deployment.TxHash.Hex())
	o.log.Info("contract deployed",
		zap.String("contract", name),
		zap.String("address", deployment.Address.Hex()),
		zap.Uint64("block", deployment.BlockNumber),
		zap.Uint64("gasUsed", deployment.GasUsed),
	)
	return deployment, nil
}

func recordAddress(step Step, deployment *contract.Deployment) error {
	if deployment == nil || deployment.Address == (common.Address{}) {
		return &StepError{Step: step, Kind: ErrDeployment, Err: errors.New("deployment returned no address")}
	}
	return nil
}

// configure registers [token] on [project]. Both must already be deployed.
func (o *Orchestrator) configure(
	ctx context.Context,
	from contract.Account,
	project *contract.Deployment,
	token *contract.Deployment,
) (*types.Receipt, error) {
	o.log.Info("registering supported token",
		zap.String("token", token.Address.Hex()),
		zap.Stringer("interestRate", o.opts.InterestRate),
		zap.Stringer("collateralRatio", o.opts.CollateralRatio),
	)
	tracker := ux.NewStepTracker(o.ul)
	tracker.Start("Adding " + token.ContractName + " to " + project.ContractName)
	receipt, err := o.chain.Transact(ctx, from, project, constants.AddSupportedTokenMethod,
		token.Address, o.opts.InterestRate.Big(), o.opts.CollateralRatio.Big())
	if err != nil {
		tracker.Failed(err.Error())
		return nil, &StepError{Step: StepConfigure, Kind: ErrTransaction, Err: err}
	}
	tracker.Complete("tx " + receipt.TxHash.Hex())
	return receipt, nil
}
