// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package simulator - verify a transaction the way a validating node would
//
// Resolution loads every input, cell dep and header dep from chain
// state.  Verification then checks the capacity rules and runs the
// predicate of each lock group followed by each type group, stopping
// at the first failure.
//
// A script runs only when its code is present among the resolved
// cell deps and a predicate is registered for its code hash.
// Contracts whose behaviour lies outside this protocol (the deposit
// primitive, the collectible and cluster types and the plain owner
// lock) are registered as always succeeding.
package simulator
