// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daocertificate/counter"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/ledger"
	"github.com/bitmark-inc/daocertificate/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Network string
	Ledger  ledger.Reader
	counter *counter.Counter
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// BlockInfo - the current tip
type BlockInfo struct {
	Number uint64 `json:"number"`
	Hash   string `json:"hash"`
}

// InfoReply - results from info request
type InfoReply struct {
	Network string    `json:"network"`
	Block   BlockInfo `json:"block"`
	RPCs    uint64    `json:"rpcs"`
	Version string    `json:"version"`
	Uptime  string    `json:"uptime"`
}

func New(log *logger.L, start time.Time, version string, network string, counter *counter.Counter, l ledger.Reader) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Network: network,
		Ledger:  l,
		counter: counter,
	}
}

// Info - report the network, tip and connection count
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Ledger {
		return fault.ErrMissingLedger
	}

	reply.Network = node.Network
	if tip := node.Ledger.Tip(); nil != tip {
		reply.Block.Number = tip.Number
		reply.Block.Hash = tip.Hash().String()
	}
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}
