// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - type predicate of deposit certificate cells
//
// the lifecycle stage is not stored, it is inferred from where the
// certificate appears in the transaction:
//
//   output only       deposit
//   input and output  mint
//   input only        withdraw
//
// withdraw is intentionally unchecked: the deposit cell and the
// minted certificate are locked by burn links, so a transaction that
// does not consume the whole chain cannot spend them, and a malformed
// one can only strand capacity, never release it
package certificate
