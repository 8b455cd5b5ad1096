// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/wire"
)

// CreatorLength - bytes in an encoded Creator
const CreatorLength = address.Length + 1 + 1

// Creator - a royalty recipient
type Creator struct {
	Address  address.Address `json:"address"`
	Verified bool            `json:"verified"`
	Share    uint8           `json:"share"` // percentage
}

// Encode - address, verified, share
func (c Creator) Encode(w *wire.Writer) {
	w.PutAddress(c.Address)
	w.PutBool(c.Verified)
	w.PutU8(c.Share)
}

func decodeCreator(r *wire.Reader) (Creator, error) {
	c := Creator{}
	var err error
	if c.Address, err = r.Address(); nil != err {
		return c, err
	}
	if c.Verified, err = r.Flag(); nil != err {
		return c, err
	}
	if c.Share, err = r.U8(); nil != err {
		return c, err
	}
	return c, nil
}

// creators are framed as an option holding a u32 count
func encodeCreators(w *wire.Writer, creators []Creator) {
	w.PutPresence(nil != creators)
	if nil == creators {
		return
	}
	w.PutU32(uint32(len(creators)))
	for _, c := range creators {
		c.Encode(w)
	}
}

// nil when absent, a non-nil slice when present
func decodeCreators(r *wire.Reader) ([]Creator, error) {
	present, err := r.Some()
	if nil != err || !present {
		return nil, err
	}
	n, err := r.U32()
	if nil != err {
		return nil, err
	}

	// refuse counts the buffer cannot hold before allocating
	if uint64(n)*CreatorLength > uint64(r.Remaining()) {
		return nil, fault.ErrTruncatedData
	}

	creators := make([]Creator, 0, n)
	for i := uint32(0); i < n; i += 1 {
		c, err := decodeCreator(r)
		if nil != err {
			return nil, err
		}
		creators = append(creators, c)
	}
	return creators, nil
}
