// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// exports of internals for the external storage_test package

var NewTransaction = newTransaction
var NewCache = newCache

const DbPut = dbPut
const DbDelete = dbDelete

func NewPoolHandle(prefix byte, limit []byte, dataAccess Access) *PoolHandle {
	return &PoolHandle{
		prefix:     prefix,
		limit:      limit,
		dataAccess: dataAccess,
	}
}
