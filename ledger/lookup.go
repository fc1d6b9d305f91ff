// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/storage"
	"github.com/bitmark-inc/logger"
)

// LiveCell - fetch an unspent cell
func (l *Ledger) LiveCell(ctx context.Context, outPoint cell.OutPoint) (*cell.LiveCell, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}

	l.RLock()
	defer l.RUnlock()

	return liveCell(outPoint.Pack())
}

func liveCell(key []byte) (*cell.LiveCell, error) {
	packed := storage.Pool.Cells.Get(key)
	if nil == packed {
		return nil, fault.ErrDeadCell
	}
	c, err := cell.UnpackLiveCell(packed)
	logger.PanicIfError("ledger.liveCell", err)
	return c, nil
}

// Header - fetch a block header by hash
func (l *Ledger) Header(ctx context.Context, hash digest.Digest) (*cell.Header, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}

	l.RLock()
	defer l.RUnlock()

	h, err := l.header(hash[:])
	if nil != err {
		return nil, err
	}
	result := *h
	return &result, nil
}

// HeaderByNumber - fetch a block header by height
func (l *Ledger) HeaderByNumber(ctx context.Context, n uint64) (*cell.Header, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}

	l.RLock()
	defer l.RUnlock()

	hash := storage.Pool.BlockNumber.Get(blockNumberKey(n))
	if nil == hash {
		return nil, fault.ErrHeaderNotFound
	}
	h, err := l.header(hash)
	if nil != err {
		return nil, err
	}
	result := *h
	return &result, nil
}

// TransactionBlock - block number a transaction was committed in
func (l *Ledger) TransactionBlock(ctx context.Context, txHash digest.Digest) (uint64, error) {
	if err := ctx.Err(); nil != err {
		return 0, err
	}

	n, found := storage.Pool.Transactions.GetN(txHash[:])
	if !found {
		return 0, fault.ErrTransactionNotFound
	}
	return n, nil
}

// FindCells - live cells matching a query in out point order
func (l *Ledger) FindCells(ctx context.Context, query *Query) ([]*cell.LiveCell, error) {
	var pool storage.Handle
	var hash digest.Digest

	switch {
	case nil != query.Lock:
		pool = storage.Pool.LockIndex
		hash = query.Lock.Hash()
	case nil != query.Type:
		pool = storage.Pool.TypeIndex
		hash = query.Type.Hash()
	default:
		return nil, fault.ErrMissingParameters
	}

	l.RLock()
	defer l.RUnlock()

	limit := query.limit()
	cells := make([]*cell.LiveCell, 0, limit)
	err := pool.NewFetchCursor().Prefix(hash[:]).Map(func(key []byte, value []byte) error {
		if err := ctx.Err(); nil != err {
			return err
		}
		c, err := liveCell(key[digest.Length:])
		if nil != err {
			return err
		}
		if query.Match(c) {
			cells = append(cells, c)
		}
		if len(cells) >= limit {
			return errLimitReached
		}
		return nil
	})
	if nil != err && errLimitReached != err {
		return nil, err
	}
	return cells, nil
}

// stops a cursor map early
var errLimitReached = fault.ProcessError("limit reached")
