// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
)

// Reader - read access to the chain
type Reader interface {
	Tip() *cell.Header
	LiveCell(ctx context.Context, outPoint cell.OutPoint) (*cell.LiveCell, error)
	Header(ctx context.Context, hash digest.Digest) (*cell.Header, error)
	HeaderByNumber(ctx context.Context, n uint64) (*cell.Header, error)
	TransactionBlock(ctx context.Context, txHash digest.Digest) (uint64, error)
	FindCells(ctx context.Context, query *Query) ([]*cell.LiveCell, error)
}

// Handle - read and append access to the chain
type Handle interface {
	Reader
	Commit(tx *cell.Transaction) (*cell.Header, error)
	Fund(lock cell.Script, capacity uint64) (cell.OutPoint, error)
}

// check the ledger satisfies the interface
var _ Handle = &Ledger{}
