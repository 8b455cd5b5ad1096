// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
)

// Reader - a bounds checked cursor over a byte slice
type Reader struct {
	buffer []byte
	offset int
}

// NewReader - start reading at the first byte
func NewReader(buffer []byte) *Reader {
	return &Reader{
		buffer: buffer,
	}
}

// Offset - bytes consumed so far
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining - bytes not yet consumed
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.offset
}

// slice the next n bytes, the result aliases the input
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fault.ErrTruncatedData
	}
	b := r.buffer[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

// U8 - a single byte
func (r *Reader) U8() (uint8, error) {
	b, err := r.take(1)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

// Bool - strictly 0 or 1
func (r *Reader) Bool() (bool, error) {
	b, err := r.take(1)
	if nil != err {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrInvalidBoolean
	}
}

// Flag - any non-zero byte is true
//
// only for fields whose layout stores flags as raw bytes
func (r *Reader) Flag() (bool, error) {
	b, err := r.take(1)
	if nil != err {
		return false, err
	}
	return 0 != b[0], nil
}

// U16 - little endian
func (r *Reader) U16() (uint16, error) {
	b, err := r.take(2)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U32 - little endian
func (r *Reader) U32() (uint32, error) {
	b, err := r.take(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U64 - little endian
func (r *Reader) U64() (uint64, error) {
	b, err := r.take(8)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Address - 32 raw bytes
func (r *Reader) Address() (address.Address, error) {
	b, err := r.take(address.Length)
	if nil != err {
		return address.Address{}, err
	}
	return address.FromBytes(b)
}

// Raw - the next n bytes, copied
func (r *Reader) Raw(n int) ([]byte, error) {
	b, err := r.take(n)
	if nil != err {
		return nil, err
	}
	c := make([]byte, n)
	copy(c, b)
	return c, nil
}

// Text - a u32 byte count followed by valid UTF-8, the counterpart of PutString
func (r *Reader) Text() (string, error) {
	n, err := r.U32()
	if nil != err {
		return "", err
	}
	if uint64(n) > uint64(r.Remaining()) {
		return "", fault.ErrTruncatedData
	}
	b, err := r.take(int(n))
	if nil != err {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fault.ErrInvalidUTF8String
	}
	return string(b), nil
}

// Presence - the option framing byte, strictly 0 or 1
func (r *Reader) Presence() (bool, error) {
	b, err := r.take(1)
	if nil != err {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrInvalidPresence
	}
}

// Some - an option framing byte where only 1 is present and any
// other value reads as absent with no payload
func (r *Reader) Some() (bool, error) {
	b, err := r.take(1)
	if nil != err {
		return false, err
	}
	return 1 == b[0], nil
}

// OptionalU8 - nil when absent
func (r *Reader) OptionalU8() (*uint8, error) {
	present, err := r.Presence()
	if nil != err || !present {
		return nil, err
	}
	v, err := r.U8()
	if nil != err {
		return nil, err
	}
	return &v, nil
}

// OptionalAddress - nil when absent
func (r *Reader) OptionalAddress() (*address.Address, error) {
	present, err := r.Presence()
	if nil != err || !present {
		return nil, err
	}
	a, err := r.Address()
	if nil != err {
		return nil, err
	}
	return &a, nil
}
