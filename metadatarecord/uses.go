// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"github.com/bitmark-inc/tokenmetadata/wire"
)

// UsesLength - bytes in an encoded Uses
const UsesLength = 1 + 8 + 8

// Uses - a limited use token
type Uses struct {
	UseMethod UseMethod `json:"useMethod"`
	Remaining uint64    `json:"remaining"`
	Total     uint64    `json:"total"`
}

// Encode - method, remaining, total
func (u Uses) Encode(w *wire.Writer) {
	w.PutU8(uint8(u.UseMethod))
	w.PutU64(u.Remaining)
	w.PutU64(u.Total)
}

func decodeUses(r *wire.Reader) (Uses, error) {
	u := Uses{}
	b, err := r.U8()
	if nil != err {
		return u, err
	}
	if u.UseMethod, err = UseMethodFromByte(b); nil != err {
		return u, err
	}
	if u.Remaining, err = r.U64(); nil != err {
		return u, err
	}
	if u.Total, err = r.U64(); nil != err {
		return u, err
	}
	return u, nil
}
