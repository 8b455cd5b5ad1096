// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"bytes"

	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/identity"
)

// field capacities, strings hold one byte less than their capacity
const (
	NameLength   = 32
	SymbolLength = 32
	URILength    = 200
	KeyLength    = 32
	ValueLength  = 32
	MaxPairs     = 32
)

// byte offsets of the fields
const (
	updateAuthorityOffset = 0
	mintOffset            = updateAuthorityOffset + address.Length
	nameOffset            = mintOffset + address.Length
	symbolOffset          = nameOffset + NameLength
	uriOffset             = symbolOffset + SymbolLength
	pairsOffset           = uriOffset + URILength
	pairLength            = KeyLength + ValueLength

	// TokenMetadataLength - exact size of the account data
	TokenMetadataLength = pairsOffset + MaxPairs*pairLength
)

// Pair - one occupied slot of the key/value table
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TokenMetadata - read only view over a fixed layout metadata account
//
// update authority, mint, name, symbol, uri and a table of key/value
// slots; a slot is empty when the first byte of its key is zero
type TokenMetadata struct {
	data    []byte
	release func()
}

// TokenMetadataMut - writable view, writes go straight to the buffer
type TokenMetadataMut struct {
	TokenMetadata
}

// View - a read only view of exactly TokenMetadataLength bytes
func View(buffer []byte) (*TokenMetadata, error) {
	if TokenMetadataLength != len(buffer) {
		return nil, fault.InvalidAccountData
	}
	return &TokenMetadata{data: buffer}, nil
}

// ViewMut - a writable view of exactly TokenMetadataLength bytes
func ViewMut(buffer []byte) (*TokenMetadataMut, error) {
	if TokenMetadataLength != len(buffer) {
		return nil, fault.InvalidAccountData
	}
	return &TokenMetadataMut{TokenMetadata{data: buffer}}, nil
}

// Load - validate the account and hold a shared borrow until Release
func Load(info *account.Info) (*TokenMetadata, error) {
	if err := check(info, fault.InvalidAccountOwner); nil != err {
		return nil, err
	}
	ref, err := info.TryBorrowData()
	if nil != err {
		return nil, err
	}
	return &TokenMetadata{
		data:    ref.Data(),
		release: ref.Release,
	}, nil
}

// LoadMut - validate the account and hold an exclusive borrow until
// Release
func LoadMut(info *account.Info) (*TokenMetadataMut, error) {
	if err := check(info, fault.InvalidAccountOwner); nil != err {
		return nil, err
	}
	ref, err := info.TryBorrowMutData()
	if nil != err {
		return nil, err
	}
	return &TokenMetadataMut{TokenMetadata{
		data:    ref.Data(),
		release: ref.Release,
	}}, nil
}

// LoadUnchecked - validate the account without taking a borrow
//
// the caller must ensure no exclusive borrow is outstanding; an owner
// mismatch is reported as InvalidAccountData on this path
func LoadUnchecked(info *account.Info) (*TokenMetadata, error) {
	if err := check(info, fault.InvalidAccountData); nil != err {
		return nil, err
	}
	return &TokenMetadata{data: info.DataUnchecked()}, nil
}

// length first, then owner
func check(info *account.Info, ownerError error) error {
	if TokenMetadataLength != info.DataLen() {
		return fault.InvalidAccountData
	}
	if !identity.IsProgramOwned(info.Owner) {
		return ownerError
	}
	return nil
}

// Release - end the account borrow, if any, and drop the buffer so
// the view cannot be used afterwards
func (t *TokenMetadata) Release() {
	if nil != t.release {
		t.release()
		t.release = nil
	}
	t.data = nil
}

// UpdateAuthority - the zero address means none
func (t *TokenMetadata) UpdateAuthority() address.Address {
	a, _ := address.FromBytes(t.data[updateAuthorityOffset:mintOffset])
	return a
}

// HasUpdateAuthority - false once the authority has been cleared
func (t *TokenMetadata) HasUpdateAuthority() bool {
	return !t.UpdateAuthority().IsZero()
}

// Mint - the associated mint
func (t *TokenMetadata) Mint() address.Address {
	a, _ := address.FromBytes(t.data[mintOffset:nameOffset])
	return a
}

// Name - the token name
func (t *TokenMetadata) Name() string {
	return ReadFixedString(t.data[nameOffset:symbolOffset])
}

// Symbol - the token symbol
func (t *TokenMetadata) Symbol() string {
	return ReadFixedString(t.data[symbolOffset:uriOffset])
}

// URI - link to the off chain JSON
func (t *TokenMetadata) URI() string {
	return ReadFixedString(t.data[uriOffset:pairsOffset])
}

// Value - the value stored for key
func (t *TokenMetadata) Value(key string) (string, bool) {
	i := t.findKey(key)
	if i < 0 {
		return "", false
	}
	return ReadFixedString(t.valueField(i)), true
}

// Pairs - occupied slots in table order
func (t *TokenMetadata) Pairs() []Pair {
	pairs := make([]Pair, 0, MaxPairs)
	for i := 0; i < MaxPairs; i += 1 {
		k := t.keyField(i)
		if 0 == k[0] {
			continue
		}
		pairs = append(pairs, Pair{
			Key:   ReadFixedString(k),
			Value: ReadFixedString(t.valueField(i)),
		})
	}
	return pairs
}

// first slot holding key, -1 if none
//
// a slot filled to capacity with no NUL matches the first KeyLength
// bytes of key; otherwise the key is reduced to the form SetKeyValue
// stores, so an over long key finds the slot that setting it created
func (t *TokenMetadata) findKey(key string) int {
	stored := fixedForm(key, KeyLength)
	if 0 == len(stored) {
		return -1
	}
	full := fixedForm(key, KeyLength+1)
	if i := t.matchKey(full); i >= 0 || len(full) == len(stored) {
		return i
	}
	return t.matchKey(stored)
}

func (t *TokenMetadata) matchKey(wanted []byte) int {
	for i := 0; i < MaxPairs; i += 1 {
		if bytes.Equal(fixedBytes(t.keyField(i)), wanted) {
			return i
		}
	}
	return -1
}

func (t *TokenMetadata) keyField(i int) []byte {
	start := pairsOffset + i*pairLength
	return t.data[start : start+KeyLength]
}

func (t *TokenMetadata) valueField(i int) []byte {
	start := pairsOffset + i*pairLength + KeyLength
	return t.data[start : start+ValueLength]
}

// Reset - zero the whole record
func (t *TokenMetadataMut) Reset() {
	for i := range t.data {
		t.data[i] = 0
	}
}

// SetUpdateAuthority - the zero address clears the authority
func (t *TokenMetadataMut) SetUpdateAuthority(a address.Address) {
	copy(t.data[updateAuthorityOffset:mintOffset], a[:])
}

// SetMint - set the associated mint
func (t *TokenMetadataMut) SetMint(a address.Address) {
	copy(t.data[mintOffset:nameOffset], a[:])
}

// SetName - truncated to NameLength-1 bytes
func (t *TokenMetadataMut) SetName(name string) {
	WriteFixedString(t.data[nameOffset:symbolOffset], name)
}

// SetSymbol - truncated to SymbolLength-1 bytes
func (t *TokenMetadataMut) SetSymbol(symbol string) {
	WriteFixedString(t.data[symbolOffset:uriOffset], symbol)
}

// SetURI - truncated to URILength-1 bytes
func (t *TokenMetadataMut) SetURI(uri string) {
	WriteFixedString(t.data[uriOffset:pairsOffset], uri)
}

// SetKeyValue - update in place, else take the first empty slot
//
// fails with AccountDataTooSmall when every slot is occupied and with
// InvalidArgument for a key that stores as empty
func (t *TokenMetadataMut) SetKeyValue(key string, value string) error {
	if 0 == len(fixedForm(key, KeyLength)) {
		return fault.InvalidArgument
	}
	if i := t.findKey(key); i >= 0 {
		WriteFixedString(t.valueField(i), value)
		return nil
	}
	for i := 0; i < MaxPairs; i += 1 {
		if 0 == t.keyField(i)[0] {
			WriteFixedString(t.keyField(i), key)
			WriteFixedString(t.valueField(i), value)
			return nil
		}
	}
	return fault.AccountDataTooSmall
}

// RemoveKey - clear the slot holding key, false if absent
func (t *TokenMetadataMut) RemoveKey(key string) bool {
	i := t.findKey(key)
	if i < 0 {
		return false
	}
	WriteFixedString(t.keyField(i), "")
	WriteFixedString(t.valueField(i), "")
	return true
}

// Update - apply one field change
func (t *TokenMetadataMut) Update(field Field) error {
	switch field.Kind {
	case FieldName:
		t.SetName(field.Value)
	case FieldSymbol:
		t.SetSymbol(field.Value)
	case FieldURI:
		t.SetURI(field.Value)
	case FieldKey:
		return t.SetKeyValue(field.Key, field.Value)
	default:
		return fault.InvalidArgument
	}
	return nil
}
