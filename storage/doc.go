// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. block number = big endian uint64 (8 bytes)
// 4. out point    = tx hash ++ little endian uint32 index (36 bytes)
// 5. *hash        = 32 byte personalised blake2b-256
//
// Cells:
//
//   C ++ out point             - live cell
//                                data: packed live cell (out point, output, data, block hash, block number)
//   L ++ lock hash ++ out point - live cells by lock
//                                data: empty
//   T ++ type hash ++ out point - live cells by type
//                                data: empty
//
// Blocks:
//
//   H ++ block hash            - block header
//                                data: packed header
//   N ++ block number          - canonical chain
//                                data: block hash
//   X ++ tx hash               - committed transactions
//                                data: block number
//
// Testing:
//   Z ++ key                   - testing data
package storage
