// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - execution environment for lock and type predicates
//
// a predicate sees a single resolved transaction through a Context,
// loading cells, data, inputs and headers by index from a Source;
// a load past the end of a source returns fault.ErrIndexOutOfBound
// which is how predicates iterate
//
// scripts are grouped by hash: a lock group holds the inputs that
// share a lock, a type group holds the inputs and outputs that share
// a type, and each group runs its predicate exactly once
package script
