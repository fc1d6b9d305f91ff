// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC access to the chain
//
// Services (method names as seen by a client):
//
//   Node.Info            network, tip and connection count
//   Cells.Get            one live cell by out point
//   Cells.Find           live cells by lock or type
//   Headers.Get          header by hash or number
//   Headers.Tip          highest header
//   Transaction.Verify   run every predicate without committing
//   Transaction.Submit   verify and commit as the next block
//   Transaction.Status   block number of a committed transaction
//   Faucet.Fund          new plain cell, simulated networks only
package rpc
