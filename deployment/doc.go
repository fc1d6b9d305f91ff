// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package deployment - where each contract's code lives on a network
//
// a Table is built once at start up from the configuration and then
// only read; on the simulated network every contract resolves to a
// deterministic placeholder instead of failing
package deployment
