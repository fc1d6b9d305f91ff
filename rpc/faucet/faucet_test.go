// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package faucet_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/chain"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/fixtures"
	"github.com/bitmark-inc/daocertificate/rpc/faucet"
	"github.com/bitmark-inc/daocertificate/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func TestFaucetFund(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	f := faucet.New(logger.New(fixtures.LogCategory), chain.Fakenet, l)

	lock := fixtures.Owner("alice")
	capacity := uint64(5000 * cell.ShannonsPerCKB)
	outPoint := cell.OutPoint{TxHash: digest.NewDigest([]byte("cellbase"))}

	l.EXPECT().Fund(lock, capacity).Return(outPoint, nil).Times(1)

	var reply faucet.Reply
	err := f.Fund(&faucet.Arguments{Lock: lock, Capacity: capacity}, &reply)
	assert.Nil(t, err, "wrong Fund")
	assert.Equal(t, outPoint, reply.OutPoint, "wrong out point")
}

func TestFaucetRefused(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	l.EXPECT().Fund(gomock.Any(), gomock.Any()).Times(0)

	lock := fixtures.Owner("alice")
	var reply faucet.Reply

	f := faucet.New(logger.New(fixtures.LogCategory), chain.Mainnet, l)
	err := f.Fund(&faucet.Arguments{Lock: lock, Capacity: 100}, &reply)
	assert.Equal(t, fault.ErrNotSimulated, err, "mainnet funding")

	f = faucet.New(logger.New(fixtures.LogCategory), chain.Fakenet, l)
	err = f.Fund(&faucet.Arguments{Lock: lock}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero capacity")

	err = f.Fund(&faucet.Arguments{Lock: lock, Capacity: faucet.MaximumCapacity + 1}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "excessive capacity")
}
