// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/storage"
)

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown(t)

	populate(t)

	cursor := storage.Pool.TestData.NewFetchCursor()

	_, err := cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	first, err := cursor.Fetch(3)
	require.Nil(t, err, "first fetch")
	assert.Equal(t, expectedElements[:3], first, "first block")

	rest, err := cursor.Fetch(100)
	require.Nil(t, err, "second fetch")
	assert.Equal(t, expectedElements[3:], rest, "remaining block")

	empty, err := cursor.Fetch(100)
	require.Nil(t, err, "final fetch")
	assert.Equal(t, 0, len(empty), "exhausted")
}

func TestFetchCursorSeek(t *testing.T) {
	setup(t)
	defer teardown(t)

	populate(t)

	cursor := storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-seven"))
	elements, err := cursor.Fetch(2)
	require.Nil(t, err, "fetch")
	assert.Equal(t, expectedElements[3:5], elements, "after seek")
}

func TestMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	populate(t)

	seen := make([]storage.Element, 0, len(expectedElements))
	err := storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		seen = append(seen, storage.Element{Key: key, Value: value})
		return nil
	})
	require.Nil(t, err, "map")
	assert.Equal(t, expectedElements, seen, "all elements in order")

	n := 0
	err = storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return fault.ErrInvalidCount
	})
	assert.Equal(t, fault.ErrInvalidCount, err, "callback error stops map")
	assert.Equal(t, 1, n, "single call")
}
