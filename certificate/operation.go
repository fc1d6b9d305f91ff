// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/script"
)

// Operation - lifecycle stage of a transaction
type Operation int

// the operations
const (
	Invalid Operation = iota
	Deposit
	Mint
	Withdraw
)

// String - name of the operation
func (op Operation) String() string {
	switch op {
	case Deposit:
		return "deposit"
	case Mint:
		return "mint"
	case Withdraw:
		return "withdraw"
	default:
		return "invalid"
	}
}

// Classify - determine the operation from group membership
func Classify(ctx script.Context) (Operation, error) {
	inInput, err := script.Exists(ctx, 0, script.SourceGroupInput)
	if nil != err {
		return Invalid, err
	}
	inOutput, err := script.Exists(ctx, 0, script.SourceGroupOutput)
	if nil != err {
		return Invalid, err
	}

	switch {
	case !inInput && inOutput:
		return Deposit, nil
	case inInput && inOutput:
		return Mint, nil
	case inInput && !inOutput:
		return Withdraw, nil
	default:
		return Invalid, fault.ErrUnknownPattern
	}
}
