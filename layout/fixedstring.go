// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"bytes"
	"unicode/utf8"
)

// ReadFixedString - the bytes up to the first NUL (or the end of the
// field) as a string
//
// invalid UTF-8 reads as the empty string
func ReadFixedString(field []byte) string {
	b := fixedBytes(field)
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}

// WriteFixedString - zero fill the field then copy at most
// len(field)-1 bytes of s, so a terminating NUL always remains
//
// longer strings are truncated without error
func WriteFixedString(field []byte, s string) {
	for i := range field {
		field[i] = 0
	}
	if 0 == len(field) {
		return
	}
	n := len(s)
	if n > len(field)-1 {
		n = len(field) - 1
	}
	copy(field, s[:n])
}

// the raw stored bytes without terminator or padding
func fixedBytes(field []byte) []byte {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		return field[:i]
	}
	return field
}

// the bytes WriteFixedString would store for s in a field of the given
// capacity, used to compare lookups against stored keys
func fixedForm(s string, capacity int) []byte {
	if 0 == capacity {
		return nil
	}
	b := []byte(s)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if len(b) > capacity-1 {
		b = b[:capacity-1]
	}
	return b
}
