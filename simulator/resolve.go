// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package simulator

import (
	"context"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/molecule"
	"github.com/bitmark-inc/daocertificate/script"
)

// State - chain state needed to resolve a transaction
type State interface {
	LiveCell(ctx context.Context, outPoint cell.OutPoint) (*cell.LiveCell, error)
	Header(ctx context.Context, hash digest.Digest) (*cell.Header, error)
}

// Resolve - load everything a transaction references
func Resolve(ctx context.Context, state State, tx *cell.Transaction) (*script.ResolvedTransaction, error) {
	if 0 == len(tx.Inputs) {
		return nil, fault.ErrEmptyInputs
	}

	rtx := &script.ResolvedTransaction{
		Transaction: tx,
		Inputs:      make([]*cell.LiveCell, 0, len(tx.Inputs)),
		CellDeps:    make([]*cell.LiveCell, 0, len(tx.CellDeps)),
		HeaderDeps:  make([]*cell.Header, 0, len(tx.HeaderDeps)),
	}

	seen := make(map[cell.OutPoint]struct{})
	for _, in := range tx.Inputs {
		if _, ok := seen[in.PreviousOutput]; ok {
			return nil, fault.ErrDuplicateInput
		}
		seen[in.PreviousOutput] = struct{}{}

		if in.PreviousOutput.IsNull() {
			return nil, fault.ErrDeadCell
		}
		c, err := state.LiveCell(ctx, in.PreviousOutput)
		if nil != err {
			return nil, err
		}
		rtx.Inputs = append(rtx.Inputs, c)
	}

	for _, dep := range tx.CellDeps {
		c, err := state.LiveCell(ctx, dep.OutPoint)
		if fault.ErrDeadCell == err {
			return nil, fault.ErrCellDepNotFound
		}
		if nil != err {
			return nil, err
		}

		if cell.DepTypeCode == dep.DepType {
			rtx.CellDeps = append(rtx.CellDeps, c)
			continue
		}

		// a dep group lists the out points of its members
		members, err := molecule.UnpackFixVec(c.Data, cell.OutPointSize)
		if nil != err {
			return nil, fault.ErrInvalidCellData
		}
		for _, packed := range members {
			outPoint, err := cell.UnpackOutPoint(packed)
			if nil != err {
				return nil, fault.ErrInvalidCellData
			}
			member, err := state.LiveCell(ctx, outPoint)
			if fault.ErrDeadCell == err {
				return nil, fault.ErrCellDepNotFound
			}
			if nil != err {
				return nil, err
			}
			rtx.CellDeps = append(rtx.CellDeps, member)
		}
	}

	for _, hash := range tx.HeaderDeps {
		h, err := state.Header(ctx, hash)
		if nil != err {
			return nil, err
		}
		rtx.HeaderDeps = append(rtx.HeaderDeps, h)
	}

	return rtx, nil
}
