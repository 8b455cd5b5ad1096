// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/fixtures"
	"github.com/bitmark-inc/tokenmetadata/layout"
)

func newView(t *testing.T) (*layout.TokenMetadataMut, []byte) {
	buffer := make([]byte, layout.TokenMetadataLength)
	view, err := layout.ViewMut(buffer)
	require.Nil(t, err, "view")
	return view, buffer
}

func TestLength(t *testing.T) {
	assert.Equal(t, 2376, layout.TokenMetadataLength, "record length")

	for _, n := range []int{0, layout.TokenMetadataLength - 1, layout.TokenMetadataLength + 1} {
		_, err := layout.View(make([]byte, n))
		assert.Equal(t, fault.InvalidAccountData, err, "view of: %d bytes", n)
		_, err = layout.ViewMut(make([]byte, n))
		assert.Equal(t, fault.InvalidAccountData, err, "mutable view of: %d bytes", n)
	}
}

func TestFieldOffsets(t *testing.T) {
	view, buffer := newView(t)

	view.SetUpdateAuthority(fixtures.Authority.Address)
	view.SetMint(fixtures.Mint.Address)
	view.SetName("N")
	view.SetSymbol("S")
	view.SetURI("U")
	err := view.SetKeyValue("k", "v")
	require.Nil(t, err, "set key")

	assert.Equal(t, fixtures.Authority.Address[:], buffer[0:32], "update authority")
	assert.Equal(t, fixtures.Mint.Address[:], buffer[32:64], "mint")
	assert.Equal(t, byte('N'), buffer[64], "name")
	assert.Equal(t, byte('S'), buffer[96], "symbol")
	assert.Equal(t, byte('U'), buffer[128], "uri")
	assert.Equal(t, byte('k'), buffer[328], "first key")
	assert.Equal(t, byte('v'), buffer[360], "first value")

	assert.Equal(t, fixtures.Authority.Address, view.UpdateAuthority(), "read update authority")
	assert.True(t, view.HasUpdateAuthority(), "has update authority")
	assert.Equal(t, fixtures.Mint.Address, view.Mint(), "read mint")
	assert.Equal(t, "N", view.Name(), "read name")
	assert.Equal(t, "S", view.Symbol(), "read symbol")
	assert.Equal(t, "U", view.URI(), "read uri")

	view.SetUpdateAuthority(address.Address{})
	assert.False(t, view.HasUpdateAuthority(), "cleared update authority")

	view.Reset()
	assert.Equal(t, make([]byte, layout.TokenMetadataLength), buffer, "reset")
}

func TestStringTruncation(t *testing.T) {
	view, _ := newView(t)

	view.SetName(strings.Repeat("n", 40))
	view.SetSymbol(strings.Repeat("s", 32))
	view.SetURI(strings.Repeat("u", 300))

	assert.Equal(t, strings.Repeat("n", 31), view.Name(), "name")
	assert.Equal(t, strings.Repeat("s", 31), view.Symbol(), "symbol")
	assert.Equal(t, strings.Repeat("u", 199), view.URI(), "uri")
}

func TestKeyValueTable(t *testing.T) {
	view, _ := newView(t)

	_, ok := view.Value("colour")
	assert.False(t, ok, "absent key")

	err := view.SetKeyValue("colour", "red")
	require.Nil(t, err, "set")
	v, ok := view.Value("colour")
	assert.True(t, ok, "present key")
	assert.Equal(t, "red", v, "value")

	err = view.SetKeyValue("colour", "blue")
	require.Nil(t, err, "update")
	v, _ = view.Value("colour")
	assert.Equal(t, "blue", v, "updated value")
	assert.Equal(t, []layout.Pair{{Key: "colour", Value: "blue"}}, view.Pairs(), "updated in place")

	assert.True(t, view.RemoveKey("colour"), "remove")
	_, ok = view.Value("colour")
	assert.False(t, ok, "removed key")
	assert.False(t, view.RemoveKey("colour"), "remove twice")
	assert.Equal(t, []layout.Pair{}, view.Pairs(), "empty table")
}

func TestKeyValueTableFull(t *testing.T) {
	view, _ := newView(t)

	for i := 0; i < layout.MaxPairs; i += 1 {
		err := view.SetKeyValue(fmt.Sprintf("key-%02d", i), fmt.Sprintf("value-%02d", i))
		require.Nil(t, err, "%d: set", i)
	}

	err := view.SetKeyValue("one-too-many", "x")
	assert.Equal(t, fault.AccountDataTooSmall, err, "full table")

	err = view.SetKeyValue("key-07", "changed")
	assert.Nil(t, err, "update in a full table")

	assert.True(t, view.RemoveKey("key-03"), "remove")
	err = view.SetKeyValue("one-too-many", "x")
	require.Nil(t, err, "insert after remove")

	pairs := view.Pairs()
	assert.Equal(t, layout.MaxPairs, len(pairs), "pair count")
	assert.Equal(t, layout.Pair{Key: "one-too-many", Value: "x"}, pairs[3], "reused first empty slot")
	assert.Equal(t, layout.Pair{Key: "key-07", Value: "changed"}, pairs[7], "updated slot")
}

func TestOverLongKeys(t *testing.T) {
	view, _ := newView(t)

	long := strings.Repeat("k", 40)
	value := strings.Repeat("v", 40)

	err := view.SetKeyValue(long, value)
	require.Nil(t, err, "set long key")
	err = view.SetKeyValue(long, "second")
	require.Nil(t, err, "set long key again")

	assert.Equal(t, 1, len(view.Pairs()), "one slot used")

	v, ok := view.Value(long)
	assert.True(t, ok, "long key found")
	assert.Equal(t, "second", v, "long key value")

	v, ok = view.Value(long[:31])
	assert.True(t, ok, "stored prefix found")
	assert.Equal(t, "second", v, "stored prefix value")

	assert.True(t, view.RemoveKey(long), "remove long key")
	assert.Equal(t, 0, len(view.Pairs()), "no slots used")

	err = view.SetKeyValue("short", value)
	require.Nil(t, err, "long value")
	v, _ = view.Value("short")
	assert.Equal(t, strings.Repeat("v", 31), v, "truncated value")
}

func TestFullWidthStoredKey(t *testing.T) {
	view, buffer := newView(t)

	// a key filling its whole slot with no terminator
	key := strings.Repeat("x", layout.KeyLength)
	copy(buffer[328:360], key)
	copy(buffer[360:], "v")

	v, ok := view.Value(key)
	assert.True(t, ok, "full width key found")
	assert.Equal(t, "v", v, "full width key value")

	v, ok = view.Value(key + "yyyy")
	assert.True(t, ok, "longer key matches the stored bytes")
	assert.Equal(t, "v", v, "longer key value")

	_, ok = view.Value(key[:layout.KeyLength-1])
	assert.False(t, ok, "shorter key matched")

	err := view.SetKeyValue(key, "w")
	require.Nil(t, err, "set full width key")
	assert.Equal(t, []layout.Pair{{Key: key, Value: "w"}}, view.Pairs(), "updated in place")

	assert.True(t, view.RemoveKey(key), "remove full width key")
	assert.Equal(t, 0, len(view.Pairs()), "no slots used")
}

func TestEmptyKeys(t *testing.T) {
	view, _ := newView(t)

	assert.Equal(t, fault.InvalidArgument, view.SetKeyValue("", "x"), "empty key")
	assert.Equal(t, fault.InvalidArgument, view.SetKeyValue("\x00abc", "x"), "key starting with NUL")

	_, ok := view.Value("")
	assert.False(t, ok, "empty key matched an empty slot")
	assert.False(t, view.RemoveKey(""), "empty key removed")
}

func TestUpdateField(t *testing.T) {
	view, _ := newView(t)

	items := []layout.Field{
		{Kind: layout.FieldName, Value: "name"},
		{Kind: layout.FieldSymbol, Value: "SYM"},
		{Kind: layout.FieldURI, Value: "https://example.com/a.json"},
		{Kind: layout.FieldKey, Key: "edition", Value: "first"},
	}
	for i, f := range items {
		assert.Nil(t, view.Update(f), "%d: update: %s", i, f.Kind)
	}

	assert.Equal(t, "name", view.Name(), "name")
	assert.Equal(t, "SYM", view.Symbol(), "symbol")
	assert.Equal(t, "https://example.com/a.json", view.URI(), "uri")
	v, _ := view.Value("edition")
	assert.Equal(t, "first", v, "key")

	assert.Equal(t, fault.InvalidArgument, view.Update(layout.Field{Kind: 9}), "invalid kind")

	for _, k := range []layout.FieldKind{layout.FieldName, layout.FieldSymbol, layout.FieldURI, layout.FieldKey} {
		back, err := layout.FieldKindFromString(k.String())
		assert.Nil(t, err, "kind: %s", k)
		assert.Equal(t, k, back, "kind: %s", k)
	}
	_, err := layout.FieldKindFromString("colour")
	assert.Equal(t, fault.InvalidArgument, err, "unknown kind")
}

func TestLoadFromAccount(t *testing.T) {
	owned := account.NewInfo(fixtures.Payer.Address, address.MetadataProgramID, 0, make([]byte, layout.TokenMetadataLength))
	foreign := account.NewInfo(fixtures.Payer.Address, address.TokenProgramID, 0, make([]byte, layout.TokenMetadataLength))
	short := account.NewInfo(fixtures.Payer.Address, address.MetadataProgramID, 0, make([]byte, 100))

	_, err := layout.Load(short)
	assert.Equal(t, fault.InvalidAccountData, err, "short account")
	_, err = layout.LoadMut(short)
	assert.Equal(t, fault.InvalidAccountData, err, "short account mutable")
	_, err = layout.LoadUnchecked(short)
	assert.Equal(t, fault.InvalidAccountData, err, "short account unchecked")

	_, err = layout.Load(foreign)
	assert.Equal(t, fault.InvalidAccountOwner, err, "foreign account")
	_, err = layout.LoadMut(foreign)
	assert.Equal(t, fault.InvalidAccountOwner, err, "foreign account mutable")
	_, err = layout.LoadUnchecked(foreign)
	assert.Equal(t, fault.InvalidAccountData, err, "foreign account unchecked")

	m, err := layout.LoadMut(owned)
	require.Nil(t, err, "load mutable")
	m.SetName("loaded")

	_, err = layout.Load(owned)
	assert.Equal(t, fault.AccountBorrowFailed, err, "shared while exclusive")

	u, err := layout.LoadUnchecked(owned)
	require.Nil(t, err, "unchecked ignores borrows")
	assert.Equal(t, "loaded", u.Name(), "unchecked sees write")

	m.Release()
	m.Release()

	// a released view no longer reaches the account data
	assert.Panics(t, func() { m.SetName("after release") }, "write after release")
	assert.Panics(t, func() { _ = m.Name() }, "read after release")
	assert.Equal(t, "loaded", u.Name(), "data unchanged")

	r1, err := layout.Load(owned)
	require.Nil(t, err, "first shared")
	r2, err := layout.Load(owned)
	require.Nil(t, err, "second shared")
	assert.Equal(t, "loaded", r2.Name(), "shared sees write")

	_, err = layout.LoadMut(owned)
	assert.Equal(t, fault.AccountBorrowFailed, err, "exclusive while shared")

	r1.Release()
	r2.Release()
	m, err = layout.LoadMut(owned)
	require.Nil(t, err, "exclusive after release")
	m.Release()
}

func TestDiscriminator(t *testing.T) {
	d, err := layout.DiscriminatorFromBytes([]byte{112, 132, 90, 90, 11, 88, 157, 87})
	assert.Nil(t, err, "from bytes")
	assert.Equal(t, layout.TokenMetadataDiscriminator, d, "value")
	assert.Equal(t, "70845a5a0b589d57", d.String(), "text")

	_, err = layout.DiscriminatorFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidAccountData, err, "short")
	_, err = layout.DiscriminatorFromBytes(make([]byte, 9))
	assert.Equal(t, fault.InvalidAccountData, err, "long")

	assert.Equal(t, layout.Discriminator{}, layout.UninitializedDiscriminator, "uninitialized")
}
