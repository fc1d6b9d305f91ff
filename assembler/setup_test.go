// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assembler_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/daocertificate/assembler"
	"github.com/bitmark-inc/daocertificate/assembler/mocks"
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/deployment"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fixtures"
	"github.com/bitmark-inc/daocertificate/ledger"
)

const (
	ckb = cell.ShannonsPerCKB
	fee = assembler.DefaultFee
)

func owner(name string) cell.Script {
	return fixtures.Owner(name)
}

func record(name string) *deployment.Record {
	r, err := fixtures.Deployments.Get(name)
	if nil != err {
		panic(err)
	}
	return r
}

func deployed(name string, args []byte) *cell.Script {
	s := record(name).Script(args)
	return &s
}

func liveCell(tag string, index uint32, capacity uint64, lock cell.Script, typeScript *cell.Script, data []byte) *cell.LiveCell {
	return &cell.LiveCell{
		OutPoint:    cell.OutPoint{TxHash: digest.NewDigest([]byte(tag)), Index: index},
		Output:      &cell.Output{Capacity: capacity, Lock: lock, Type: typeScript},
		Data:        data,
		BlockHash:   depositHeader.Hash(),
		BlockNumber: depositHeader.Number,
	}
}

var depositHeader = &cell.Header{Number: 20, Timestamp: 160000}

// a chain holding a fixed set of cells
type testChain struct {
	cells []*cell.LiveCell
}

func (c *testChain) find(ctx context.Context, query *ledger.Query) ([]*cell.LiveCell, error) {
	found := []*cell.LiveCell{}
	for _, lc := range c.cells {
		if query.Match(lc) {
			found = append(found, lc)
		}
	}
	return found, nil
}

func setupAssembler(t *testing.T, cells ...*cell.LiveCell) (*assembler.Assembler, *mocks.MockChainState, *gomock.Controller) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	state := mocks.NewMockChainState(ctl)

	chain := &testChain{cells: cells}
	state.EXPECT().FindCells(gomock.Any(), gomock.Any()).DoAndReturn(chain.find).AnyTimes()
	state.EXPECT().Header(gomock.Any(), depositHeader.Hash()).Return(depositHeader, nil).AnyTimes()

	return assembler.New(fixtures.Deployments, state, fee), state, ctl
}

func teardownAssembler(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}
