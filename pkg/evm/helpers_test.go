// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"errors"
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/stretchr/testify/require"
)

func TestTransactionError(t *testing.T) {
	require := require.New(t)
	cause := errors.New("nonce too low")

	err := TransactionError(nil, cause, "failure deploying %s", "Project")
	require.ErrorIs(err, cause)
	require.Equal("failure deploying Project: nonce too low (tx failed to be submitted)", err.Error())

	tx := types.NewTx(&types.LegacyTx{Nonce: 1, To: &common.Address{}, Gas: 21000, GasPrice: big.NewInt(1)})
	err = TransactionError(tx, cause, "failure waiting")
	require.ErrorIs(err, cause)
	require.Contains(err.Error(), tx.Hash().String())
}

func TestCheckReceipt(t *testing.T) {
	require := require.New(t)
	require.NoError(CheckReceipt(&types.Receipt{Status: types.ReceiptStatusSuccessful}))

	err := CheckReceipt(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(7), GasUsed: 30000})
	require.ErrorIs(err, ErrReverted)
	require.Contains(err.Error(), "block 7")

	require.Error(CheckReceipt(nil))
}

func TestFormatEther(t *testing.T) {
	require := require.New(t)
	tenThousand, _ := new(big.Int).SetString("10000000000000000000000", 10)
	require.Equal("10,000.00", FormatEther(tenThousand, 2))
	require.Equal("0.500", FormatEther(big.NewInt(5e17), 3))
	require.Equal("0", FormatEther(nil, 2))
}
