// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
)

// MaxDataLength - largest data buffer the host will allocate
const MaxDataLength = 10 * 1024 * 1024

// borrow states, a positive value counts shared borrows
const (
	notBorrowed       = 0
	exclusiveBorrowed = -1
)

// Info - one account as delivered by the host
//
// Key, signer and writable flags describe the account's role in the
// current instruction and are not persisted
type Info struct {
	Key        address.Address `json:"key"`
	Owner      address.Address `json:"owner"`
	Lamports   uint64          `json:"lamports"`
	IsSigner   bool            `json:"isSigner"`
	IsWritable bool            `json:"isWritable"`

	lock   sync.Mutex
	data   []byte
	borrow int
}

// NewInfo - wrap a data buffer, the buffer is owned by the result
func NewInfo(key address.Address, owner address.Address, lamports uint64, data []byte) *Info {
	if nil == data {
		data = []byte{}
	}
	return &Info{
		Key:      key,
		Owner:    owner,
		Lamports: lamports,
		data:     data,
	}
}

// DataLen - current size of the data buffer
func (info *Info) DataLen() int {
	info.lock.Lock()
	defer info.lock.Unlock()
	return len(info.data)
}

// DataIsEmpty - true for a zero length buffer
func (info *Info) DataIsEmpty() bool {
	return 0 == info.DataLen()
}

// IsOwnedBy - compare the owner
func (info *Info) IsOwnedBy(owner address.Address) bool {
	return owner == info.Owner
}

// DataUnchecked - the data buffer without taking a borrow
//
// the caller must ensure no exclusive borrow is outstanding
func (info *Info) DataUnchecked() []byte {
	info.lock.Lock()
	defer info.lock.Unlock()
	return info.data
}

// TryBorrowData - shared read access to the data buffer
//
// fails while an exclusive borrow is outstanding
func (info *Info) TryBorrowData() (*Ref, error) {
	info.lock.Lock()
	defer info.lock.Unlock()
	if exclusiveBorrowed == info.borrow {
		return nil, fault.AccountBorrowFailed
	}
	info.borrow += 1
	return &Ref{
		info: info,
		data: info.data,
	}, nil
}

// TryBorrowMutData - exclusive write access to the data buffer
//
// fails while any other borrow is outstanding
func (info *Info) TryBorrowMutData() (*RefMut, error) {
	info.lock.Lock()
	defer info.lock.Unlock()
	if notBorrowed != info.borrow {
		return nil, fault.AccountBorrowFailed
	}
	info.borrow = exclusiveBorrowed
	return &RefMut{
		info: info,
		data: info.data,
	}, nil
}

// Realloc - resize the data buffer, new bytes are zero
//
// the host's resize, must run before any view of the new layout is
// taken
func (info *Info) Realloc(length int) error {
	if length < 0 || length > MaxDataLength {
		return fault.InvalidRealloc
	}

	info.lock.Lock()
	defer info.lock.Unlock()

	if notBorrowed != info.borrow {
		return fault.AccountBorrowFailed
	}

	switch {
	case length <= len(info.data):
		info.data = info.data[:length:length]
	default:
		data := make([]byte, length)
		copy(data, info.data)
		info.data = data
	}
	return nil
}

// Digest - SHA3-256 of the data buffer
func (info *Info) Digest() ([32]byte, error) {
	ref, err := info.TryBorrowData()
	if nil != err {
		return [32]byte{}, err
	}
	defer ref.Release()
	return sha3.Sum256(ref.Data()), nil
}

// AssertOwnedBy - fail with IncorrectOwner unless owner matches
func AssertOwnedBy(info *Info, owner address.Address) error {
	if !info.IsOwnedBy(owner) {
		return fault.IncorrectOwner
	}
	return nil
}

// AssertSigner - fail with MissingRequiredSignature unless signed
func AssertSigner(info *Info) error {
	if !info.IsSigner {
		return fault.MissingRequiredSignature
	}
	return nil
}

// release one borrow
func (info *Info) release(exclusive bool) {
	info.lock.Lock()
	defer info.lock.Unlock()
	if exclusive {
		info.borrow = notBorrowed
	} else if info.borrow > 0 {
		info.borrow -= 1
	}
}
