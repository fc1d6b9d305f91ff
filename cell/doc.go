// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cell - the cell model
//
// every unit of value on the chain is a cell carrying a capacity,
// a lock script that decides who can spend it, an optional type
// script that decides how it may change, and opaque data
//
// all packed forms use molecule serialisation so that hashes match
// what validating nodes compute
package cell
