// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenmetadata/layout"
)

func TestReadFixedString(t *testing.T) {
	items := []struct {
		field    []byte
		expected string
	}{
		{[]byte{}, ""},
		{[]byte{0, 0, 0}, ""},
		{[]byte{'a', 'b', 0, 0}, "ab"},
		{[]byte{'a', 'b', 0, 'c'}, "ab"},
		{[]byte{'a', 'b', 'c', 'd'}, "abcd"},
		{[]byte{0xc3, 0x28, 0}, ""},
		{[]byte{0xe2, 0x82, 0xac, 0}, "€"},
	}

	for i, item := range items {
		assert.Equal(t, item.expected, layout.ReadFixedString(item.field), "%d: field: %x", i, item.field)
	}
}

func TestWriteFixedString(t *testing.T) {
	items := []struct {
		capacity int
		value    string
		expected []byte
	}{
		{4, "", []byte{0, 0, 0, 0}},
		{4, "ab", []byte{'a', 'b', 0, 0}},
		{4, "abc", []byte{'a', 'b', 'c', 0}},
		{4, "abcdef", []byte{'a', 'b', 'c', 0}},
		{1, "abc", []byte{0}},
		{0, "abc", []byte{}},
	}

	for i, item := range items {
		field := make([]byte, item.capacity)
		for j := range field {
			field[j] = 0xff
		}
		layout.WriteFixedString(field, item.value)
		assert.Equal(t, item.expected, field, "%d: value: %q", i, item.value)
	}
}

func TestFixedStringIdempotence(t *testing.T) {
	values := []string{
		"",
		"x",
		"Token Name",
		strings.Repeat("a", 31),
		strings.Repeat("b", 32),
		strings.Repeat("c", 250),
	}

	for _, capacity := range []int{1, 2, 10, 32, 200} {
		for i, v := range values {
			field := make([]byte, capacity)
			layout.WriteFixedString(field, v)

			n := len(v)
			if n > capacity-1 {
				n = capacity - 1
			}
			assert.Equal(t, v[:n], layout.ReadFixedString(field), "%d: capacity: %d", i, capacity)
		}
	}
}
