// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - 32 byte personalised blake2b hashes
//
// every script hash, transaction hash and type id on the chain is
// computed with this hash
package digest
