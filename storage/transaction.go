// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the single batched writer
//
// reads through a transaction see its own staged writes
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - a Transaction over one Access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - fails if already in use
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - stage a write to a pool
func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// Delete - stage a removal from a pool
func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read including staged writes
func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// Has - check including staged writes
func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write everything staged since Begin
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard everything staged since Begin
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// InUse - true between Begin and Commit or Abort
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
