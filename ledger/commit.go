// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/storage"
)

// GenesisCell - a cell placed directly into block zero
type GenesisCell struct {
	OutPoint cell.OutPoint
	Output   *cell.Output
	Data     []byte
}

// Genesis - create block zero holding the given cells
func (l *Ledger) Genesis(timestamp uint64, cells []GenesisCell) (*cell.Header, error) {
	l.Lock()
	defer l.Unlock()

	if nil != l.tip {
		return nil, fault.ErrAlreadyInitialised
	}

	root := digest.NewHasher()
	for _, c := range cells {
		root.Write(c.OutPoint.Pack())
	}

	header := &cell.Header{
		Timestamp: timestamp,
		Number:    0,
	}
	copy(header.TransactionsRoot[:], root.Sum(nil))

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	hash := header.Hash()
	for _, c := range cells {
		if trx.Has(storage.Pool.Cells, c.OutPoint.Pack()) {
			trx.Abort()
			return nil, fault.ErrDuplicateInput
		}
		putCell(trx, &cell.LiveCell{
			OutPoint:    c.OutPoint,
			Output:      c.Output,
			Data:        c.Data,
			BlockHash:   hash,
			BlockNumber: 0,
		})
	}
	putHeader(trx, header)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	l.tip = header
	l.log.Infof("genesis: %s  cells: %d", hash, len(cells))
	return header, nil
}

// Fund - commit a cellbase block paying capacity to a lock
func (l *Ledger) Fund(lock cell.Script, capacity uint64) (cell.OutPoint, error) {
	tip := l.Tip()
	if nil == tip {
		return cell.OutPoint{}, fault.ErrNotInitialised
	}

	tx := &cell.Transaction{
		Inputs: []cell.Input{{
			Since:          tip.Number + 1,
			PreviousOutput: cell.NullOutPoint,
		}},
		Outputs: []*cell.Output{{
			Capacity: capacity,
			Lock:     lock,
		}},
		OutputsData: []cell.Bytes{{}},
	}

	_, err := l.Commit(tx)
	if nil != err {
		return cell.OutPoint{}, err
	}
	return tx.OutPoint(0), nil
}

// Commit - apply a transaction as the next block
//
// no scripts are run here, the caller must have verified the
// transaction; a cellbase input (null previous output) consumes
// nothing
func (l *Ledger) Commit(tx *cell.Transaction) (*cell.Header, error) {
	if len(tx.Outputs) != len(tx.OutputsData) {
		return nil, fault.ErrIndexOutOfRange
	}

	l.Lock()
	defer l.Unlock()

	if nil == l.tip {
		return nil, fault.ErrNotInitialised
	}

	txHash := tx.Hash()
	if nil != storage.Pool.Transactions.Get(txHash[:]) {
		return nil, fault.ErrDuplicateInput
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	spent := make(map[cell.OutPoint]struct{})
	for _, in := range tx.Inputs {
		if in.PreviousOutput.IsNull() {
			continue
		}
		if _, ok := spent[in.PreviousOutput]; ok {
			trx.Abort()
			return nil, fault.ErrDuplicateInput
		}
		spent[in.PreviousOutput] = struct{}{}

		packed := trx.Get(storage.Pool.Cells, in.PreviousOutput.Pack())
		if nil == packed {
			trx.Abort()
			return nil, fault.ErrDeadCell
		}
		c, err := cell.UnpackLiveCell(packed)
		if nil != err {
			trx.Abort()
			return nil, err
		}
		deleteCell(trx, c)
	}

	header := &cell.Header{
		Timestamp:        l.tip.Timestamp + blockInterval,
		Number:           l.tip.Number + 1,
		ParentHash:       l.tip.Hash(),
		TransactionsRoot: txHash,
	}
	hash := header.Hash()

	for i, output := range tx.Outputs {
		putCell(trx, &cell.LiveCell{
			OutPoint:    cell.OutPoint{TxHash: txHash, Index: uint32(i)},
			Output:      output,
			Data:        tx.OutputsData[i],
			BlockHash:   hash,
			BlockNumber: header.Number,
		})
	}
	putHeader(trx, header)
	trx.PutN(storage.Pool.Transactions, txHash[:], header.Number)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	l.tip = header
	l.log.Infof("block: %d  hash: %s  tx: %s  inputs: %d  outputs: %d", header.Number, hash, txHash, len(tx.Inputs), len(tx.Outputs))
	return header, nil
}

func putCell(trx storage.Transaction, c *cell.LiveCell) {
	key := c.OutPoint.Pack()
	trx.Put(storage.Pool.Cells, key, c.Pack())
	trx.Put(storage.Pool.LockIndex, indexKey(c.LockHash(), c.OutPoint), []byte{})
	if typeHash, ok := c.TypeHash(); ok {
		trx.Put(storage.Pool.TypeIndex, indexKey(typeHash, c.OutPoint), []byte{})
	}
}

func deleteCell(trx storage.Transaction, c *cell.LiveCell) {
	trx.Delete(storage.Pool.Cells, c.OutPoint.Pack())
	trx.Delete(storage.Pool.LockIndex, indexKey(c.LockHash(), c.OutPoint))
	if typeHash, ok := c.TypeHash(); ok {
		trx.Delete(storage.Pool.TypeIndex, indexKey(typeHash, c.OutPoint))
	}
}

func putHeader(trx storage.Transaction, header *cell.Header) {
	hash := header.Hash()
	trx.Put(storage.Pool.Headers, hash[:], header.Pack())
	trx.Put(storage.Pool.BlockNumber, blockNumberKey(header.Number), hash[:])
}
