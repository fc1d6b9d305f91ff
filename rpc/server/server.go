// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/daocertificate/counter"
	"github.com/bitmark-inc/daocertificate/ledger"
	"github.com/bitmark-inc/daocertificate/rpc/cells"
	"github.com/bitmark-inc/daocertificate/rpc/faucet"
	"github.com/bitmark-inc/daocertificate/rpc/headers"
	"github.com/bitmark-inc/daocertificate/rpc/node"
	"github.com/bitmark-inc/daocertificate/rpc/transaction"
	"github.com/bitmark-inc/daocertificate/simulator"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, network string, l ledger.Handle, verifier simulator.Verifier, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, network, rpcCount, l))
	_ = server.Register(cells.New(log, l))
	_ = server.Register(headers.New(log, l))
	_ = server.Register(transaction.New(log, l, verifier))
	_ = server.Register(faucet.New(log, network, l))

	return server
}
