// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - a single node chain over the storage pools
//
// Each committed transaction becomes one block whose number is the
// tip number plus one.  Consumed cells are removed along with their
// lock and type index entries, outputs become live cells stamped
// with the new block.
//
// Block zero is created by Genesis and holds the deployed code cells,
// further value enters through cellbase blocks created by Fund.
package ledger
