// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/tokenmetadata/fault"
)

// Length - bytes in an address
const Length = 32

// Address - an opaque 32 byte account or program identifier
// represented as base58 text for JSON encoding
type Address [Length]byte

// well known program identities
var (
	MetadataProgramID    = MustFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	TokenProgramID       = MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	Token2022ProgramID   = MustFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	AssociatedTokenID    = MustFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
	InstructionsSysvarID = MustFromBase58("Sysvar1nstructions1111111111111111111111111")
	SystemProgramID      = MustFromBase58("11111111111111111111111111111111")
)

// FromBytes - convert and validate a binary byte slice to an address
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode base58 text to an address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrInvalidBase58
	}
	return FromBytes(buffer)
}

// MustFromBase58 - for constants, panics on invalid text
func MustFromBase58(s string) Address {
	a, err := FromBase58(s)
	if nil != err {
		panic(fmt.Sprintf("address: %q: %s", s, err))
	}
	return a
}

// IsZero - true for the all zero address
//
// the zero address doubles as "no authority" in fixed layout records
func (a Address) IsZero() bool {
	return Address{} == a
}

// Bytes - a copy of the address as a byte slice
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// String - base58 text for use by the fmt package (for %s)
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for use by the fmt package (for %#v)
func (a Address) GoString() string {
	return "<address:" + base58.Encode(a[:]) + ">"
}

// MarshalText - convert address to base58 text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(a[:])), nil
}

// UnmarshalText - convert base58 text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
