// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assembler

import (
	"context"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/deployment"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/ledger"
	"github.com/bitmark-inc/logger"
)

// DefaultFee - shannons left unclaimed for the block producer
const DefaultFee = 100000

// ChainState - live chain access used while building
type ChainState interface {
	LiveCell(ctx context.Context, outPoint cell.OutPoint) (*cell.LiveCell, error)
	FindCells(ctx context.Context, query *ledger.Query) ([]*cell.LiveCell, error)
	Header(ctx context.Context, hash digest.Digest) (*cell.Header, error)
}

// Assembler - pipelines bound to one deployment table and chain
type Assembler struct {
	log   *logger.L
	table *deployment.Table
	state ChainState
	fee   uint64
}

// New - create an assembler
func New(table *deployment.Table, state ChainState, fee uint64) *Assembler {
	return &Assembler{
		log:   logger.New("assembler"),
		table: table,
		state: state,
		fee:   fee,
	}
}

// Table - the deployment table transactions are built against
func (a *Assembler) Table() *deployment.Table {
	return a.table
}

// Fee - shannons each transaction leaves for the block producer
func (a *Assembler) Fee() uint64 {
	return a.fee
}
