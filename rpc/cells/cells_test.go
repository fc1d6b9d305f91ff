// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cells_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/fixtures"
	"github.com/bitmark-inc/daocertificate/ledger"
	"github.com/bitmark-inc/daocertificate/rpc/cells"
	"github.com/bitmark-inc/daocertificate/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func liveCell(name string) *cell.LiveCell {
	return &cell.LiveCell{
		OutPoint: cell.OutPoint{TxHash: digest.NewDigest([]byte(name)), Index: 1},
		Output:   &cell.Output{Capacity: 100, Lock: fixtures.Owner(name)},
	}
}

func TestCellsGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	c := cells.New(logger.New(fixtures.LogCategory), l)

	expected := liveCell("alice")
	l.EXPECT().LiveCell(gomock.Any(), expected.OutPoint).Return(expected, nil).Times(1)

	var reply cells.GetReply
	err := c.Get(&cells.GetArguments{OutPoint: expected.OutPoint}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, expected, reply.Cell, "wrong cell")
}

func TestCellsGetDead(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	c := cells.New(logger.New(fixtures.LogCategory), l)

	outPoint := cell.OutPoint{Index: 7}
	l.EXPECT().LiveCell(gomock.Any(), outPoint).Return(nil, fault.ErrDeadCell).Times(1)

	var reply cells.GetReply
	err := c.Get(&cells.GetArguments{OutPoint: outPoint}, &reply)
	assert.Equal(t, fault.ErrDeadCell, err, "wrong error")
	assert.Nil(t, reply.Cell, "unexpected cell")
}

func TestCellsFind(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	c := cells.New(logger.New(fixtures.LogCategory), l)

	lock := fixtures.Owner("alice")
	query := &ledger.Query{Lock: &lock, WithoutType: true}
	found := []*cell.LiveCell{liveCell("alice"), liveCell("alice")}

	l.EXPECT().FindCells(gomock.Any(), query).Return(found, nil).Times(1)

	var reply cells.FindReply
	err := c.Find(query, &reply)
	assert.Nil(t, err, "wrong Find")
	assert.Equal(t, found, reply.Cells, "wrong cells")
	assert.Equal(t, ledger.DefaultLimit, query.Limit, "default limit not applied")
}

func TestCellsFindInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	c := cells.New(logger.New(fixtures.LogCategory), l)

	var reply cells.FindReply
	err := c.Find(&ledger.Query{WithoutData: true}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "query without lock or type")

	lock := fixtures.Owner("alice")
	err = c.Find(&ledger.Query{Lock: &lock, Limit: ledger.MaximumLimit + 1}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "limit above maximum")
}
