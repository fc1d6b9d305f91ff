// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - all writes between Begin and Commit are applied atomically
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	Commit() error
	Abort()
}

// TransactionData - transaction over a single database access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.Put(key, value)
}

func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	h.PutN(key, value)
}

func (t *TransactionData) Delete(h Handle, key []byte) {
	h.Delete(key)
}

func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) Abort() {
	t.access.Abort()
}
