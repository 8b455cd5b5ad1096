// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/wire"
)

// version of the persisted record
const packVersion = 1

// Encode - the persisted form: version, owner, lamports, data
func (info *Info) Encode(w *wire.Writer) {
	info.lock.Lock()
	defer info.lock.Unlock()

	w.PutU8(packVersion)
	w.PutAddress(info.Owner)
	w.PutU64(info.Lamports)
	w.PutU32(uint32(len(info.data)))
	w.PutRaw(info.data)
}

// Pack - convert to the persisted form
func (info *Info) Pack() []byte {
	return wire.Marshal(info)
}

// Unpack - rebuild an account from its persisted form
//
// the result is neither a signer nor writable
func Unpack(key address.Address, buffer []byte) (*Info, error) {
	r := wire.NewReader(buffer)

	version, err := r.U8()
	if nil != err || packVersion != version {
		return nil, fault.ErrInvalidAccountRecord
	}
	owner, err := r.Address()
	if nil != err {
		return nil, fault.ErrInvalidAccountRecord
	}
	lamports, err := r.U64()
	if nil != err {
		return nil, fault.ErrInvalidAccountRecord
	}
	n, err := r.U32()
	if nil != err || uint64(n) > MaxDataLength {
		return nil, fault.ErrInvalidAccountRecord
	}
	data, err := r.Raw(int(n))
	if nil != err || 0 != r.Remaining() {
		return nil, fault.ErrInvalidAccountRecord
	}

	return NewInfo(key, owner, lamports, data), nil
}
