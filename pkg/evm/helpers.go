// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/luxfi/geth/core/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrReverted marks a transaction that was mined with a failed status
var ErrReverted = errors.New("transaction reverted")

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// transform a tx operation error into an error that contains:
// - the [err] itself
// - the [tx] hash (or information on the tx not being submitted)
// - another descriptive [msg], together with formated [args]
func TransactionError(tx *types.Transaction, err error, msg string, args ...interface{}) error {
	msgSuffix := ": %w"
	if tx != nil {
		msgSuffix += fmt.Sprintf(" (txHash=%s)", tx.Hash().String())
	} else {
		msgSuffix += " (tx failed to be submitted)"
	}
	args = append(args, err)
	return fmt.Errorf(msg+msgSuffix, args...)
}

// CheckReceipt returns ErrReverted if [receipt] reports a failed execution
func CheckReceipt(receipt *types.Receipt) error {
	if receipt == nil {
		return errors.New("missing receipt")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w in block %s (gasUsed=%d)", ErrReverted, receipt.BlockNumber, receipt.GasUsed)
	}
	return nil
}

// FormatEther renders a wei amount as ether with digit grouping and
// [decimals] fractional digits, e.g. 10000.000000
func FormatEther(wei *big.Int, decimals int) string {
	if wei == nil {
		return "0"
	}
	f := new(big.Float).SetPrec(256).SetInt(wei)
	f.Quo(f, new(big.Float).SetInt(weiPerEther))
	value, _ := f.Float64()
	p := message.NewPrinter(language.English)
	return p.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}
