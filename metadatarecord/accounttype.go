// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/identity"
)

// IsCorrectAccountType - the first byte is dataType or Uninitialized
// and the length is dataSize, a dataSize of zero accepts any length
func IsCorrectAccountType(data []byte, dataType Key, dataSize int) bool {
	if 0 == len(data) {
		return false
	}
	key, err := KeyFromByte(data[0])
	if nil != err {
		return false
	}
	if dataType != key && KeyUninitialized != key {
		return false
	}
	return 0 == dataSize || len(data) == dataSize
}

// PadLength - zero extend buffer to size, a size of zero leaves it
// unchanged
//
// a buffer already longer than size is a NumericalOverflowError
func PadLength(buffer []byte, size int) ([]byte, error) {
	if 0 == size {
		return buffer, nil
	}
	if len(buffer) > size {
		return nil, fault.NumericalOverflowError
	}
	return append(buffer, make([]byte, size-len(buffer))...), nil
}

// decode a fixed size record from an account
//
// the decode runs first so a foreign record of the wrong shape reports
// DataTypeMismatch before the owner is checked
func loadTyped(info *account.Info, decode func(data []byte) error) error {
	ref, err := info.TryBorrowData()
	if nil != err {
		return err
	}
	defer ref.Release()

	if nil != decode(ref.Data()) {
		return fault.DataTypeMismatch
	}
	if !identity.IsProgramOwned(info.Owner) {
		return fault.IncorrectOwner
	}
	return nil
}

// save a fixed size record, the account must be exactly size bytes
func saveTyped(info *account.Info, record []byte) error {
	ref, err := info.TryBorrowMutData()
	if nil != err {
		return err
	}
	defer ref.Release()

	if len(record) != len(ref.Data()) {
		return fault.ErrBufferLengthMismatch
	}
	copy(ref.Data(), record)
	return nil
}
