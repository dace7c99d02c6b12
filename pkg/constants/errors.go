// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrNoRPCEndpoint   = errors.New("no rpc endpoint configured: use --rpc or a known --network")
	ErrUnknownNetwork  = errors.New("unknown network")
	ErrInvalidBasisPts = errors.New("basis points must be positive")
)
