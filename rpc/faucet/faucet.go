// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package faucet

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/chain"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/ledger"
	"github.com/bitmark-inc/daocertificate/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitFaucet = 10
	rateBurstFaucet = 10
)

// MaximumCapacity - largest single grant in shannons
const MaximumCapacity = 1000000 * cell.ShannonsPerCKB

// Faucet - new value for a simulated network
type Faucet struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Network string
	Ledger  ledger.Handle
}

// Arguments - the lock receiving the grant
type Arguments struct {
	Lock     cell.Script `json:"lock"`
	Capacity uint64      `json:"capacity"`
}

// Reply - the granted cell
type Reply struct {
	OutPoint cell.OutPoint `json:"out_point"`
}

func New(log *logger.L, network string, l ledger.Handle) *Faucet {
	return &Faucet{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitFaucet, rateBurstFaucet),
		Network: network,
		Ledger:  l,
	}
}

// Fund - create a plain cell owned by the lock
func (f *Faucet) Fund(arguments *Arguments, reply *Reply) error {

	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}

	if !chain.Simulated(f.Network) {
		return fault.ErrNotSimulated
	}
	if nil == f.Ledger {
		return fault.ErrMissingLedger
	}
	if nil == arguments || 0 == arguments.Capacity || arguments.Capacity > MaximumCapacity {
		return fault.ErrInvalidCount
	}

	outPoint, err := f.Ledger.Fund(arguments.Lock, arguments.Capacity)
	if nil != err {
		return err
	}

	f.Log.Infof("fund: %d shannons  lock: %s  out point: %s", arguments.Capacity, arguments.Lock.Hash(), outPoint)

	reply.OutPoint = outPoint
	return nil
}
