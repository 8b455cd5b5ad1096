// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"

	"github.com/bitmark-inc/tokenmetadata/address"
)

// Encoder - a record that can write itself to a Writer
type Encoder interface {
	Encode(w *Writer)
}

// Writer - append only byte sink
//
// a sizer only counts the bytes it is given
type Writer struct {
	buffer []byte
	count  int
	sizing bool
}

// NewWriter - a writer with an initial capacity
func NewWriter(capacity int) *Writer {
	return &Writer{
		buffer: make([]byte, 0, capacity),
	}
}

// NewSizer - a writer that only measures
func NewSizer() *Writer {
	return &Writer{
		sizing: true,
	}
}

// Size - number of bytes e encodes to
func Size(e Encoder) int {
	w := NewSizer()
	e.Encode(w)
	return w.Len()
}

// Marshal - encode into an exactly sized buffer
func Marshal(e Encoder) []byte {
	w := NewWriter(Size(e))
	e.Encode(w)
	return w.Bytes()
}

// Len - bytes written so far
func (w *Writer) Len() int {
	return w.count
}

// Bytes - the written bytes, nil for a sizer
func (w *Writer) Bytes() []byte {
	return w.buffer
}

func (w *Writer) put(b ...byte) {
	w.count += len(b)
	if !w.sizing {
		w.buffer = append(w.buffer, b...)
	}
}

// PutU8 - a single byte
func (w *Writer) PutU8(v uint8) {
	w.put(v)
}

// PutBool - 1 for true, 0 for false
func (w *Writer) PutBool(v bool) {
	if v {
		w.put(1)
	} else {
		w.put(0)
	}
}

// PutU16 - little endian
func (w *Writer) PutU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.put(b[:]...)
}

// PutU32 - little endian
func (w *Writer) PutU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.put(b[:]...)
}

// PutU64 - little endian
func (w *Writer) PutU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.put(b[:]...)
}

// PutAddress - 32 raw bytes
func (w *Writer) PutAddress(a address.Address) {
	w.put(a[:]...)
}

// PutRaw - bytes with no framing
func (w *Writer) PutRaw(b []byte) {
	w.put(b...)
}

// PutString - u32 byte count followed by the bytes
func (w *Writer) PutString(s string) {
	w.PutU32(uint32(len(s)))
	w.count += len(s)
	if !w.sizing {
		w.buffer = append(w.buffer, s...)
	}
}

// PutPresence - the option framing byte
func (w *Writer) PutPresence(present bool) {
	w.PutBool(present)
}

// PutOptionalU8 - presence byte then the value when not nil
func (w *Writer) PutOptionalU8(v *uint8) {
	w.PutPresence(nil != v)
	if nil != v {
		w.PutU8(*v)
	}
}

// PutOptionalAddress - presence byte then the address when not nil
func (w *Writer) PutOptionalAddress(a *address.Address) {
	w.PutPresence(nil != a)
	if nil != a {
		w.PutAddress(*a)
	}
}
