// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"github.com/bitmark-inc/tokenmetadata/fault"
)

// Key - the account type stored in the first byte of a record
type Key uint8

// account types - never reorder
const (
	KeyUninitialized Key = iota
	KeyEditionV1
	KeyMasterEditionV1
	KeyReservationListV1
	KeyMetadataV1
	KeyReservationListV2
	KeyMasterEditionV2
	KeyEditionMarker
	KeyUseAuthorityRecord
	KeyCollectionAuthorityRecord
	KeyTokenOwnedEscrow
	KeyTokenRecord
	KeyMetadataDelegate
	KeyEditionMarkerV2
	KeyHolderDelegate
	keyLimit
)

var keyNames = [...]string{
	KeyUninitialized:             "Uninitialized",
	KeyEditionV1:                 "EditionV1",
	KeyMasterEditionV1:           "MasterEditionV1",
	KeyReservationListV1:         "ReservationListV1",
	KeyMetadataV1:                "MetadataV1",
	KeyReservationListV2:         "ReservationListV2",
	KeyMasterEditionV2:           "MasterEditionV2",
	KeyEditionMarker:             "EditionMarker",
	KeyUseAuthorityRecord:        "UseAuthorityRecord",
	KeyCollectionAuthorityRecord: "CollectionAuthorityRecord",
	KeyTokenOwnedEscrow:          "TokenOwnedEscrow",
	KeyTokenRecord:               "TokenRecord",
	KeyMetadataDelegate:          "MetadataDelegate",
	KeyEditionMarkerV2:           "EditionMarkerV2",
	KeyHolderDelegate:            "HolderDelegate",
}

// KeyFromByte - validate a stored account type
func KeyFromByte(b byte) (Key, error) {
	if Key(b) >= keyLimit {
		return keyLimit, fault.ErrInvalidKey
	}
	return Key(b), nil
}

func (k Key) String() string {
	if k < keyLimit {
		return keyNames[k]
	}
	return "Invalid"
}

// TokenStandard - the kind of token a metadata account describes
type TokenStandard uint8

// token standards - never reorder
const (
	NonFungible TokenStandard = iota
	FungibleAsset
	Fungible
	NonFungibleEdition
	ProgrammableNonFungible
	ProgrammableNonFungibleEdition
	tokenStandardLimit
)

var tokenStandardNames = [...]string{
	NonFungible:                    "NonFungible",
	FungibleAsset:                  "FungibleAsset",
	Fungible:                       "Fungible",
	NonFungibleEdition:             "NonFungibleEdition",
	ProgrammableNonFungible:        "ProgrammableNonFungible",
	ProgrammableNonFungibleEdition: "ProgrammableNonFungibleEdition",
}

// TokenStandardFromByte - validate a stored token standard
func TokenStandardFromByte(b byte) (TokenStandard, error) {
	if TokenStandard(b) >= tokenStandardLimit {
		return tokenStandardLimit, fault.ErrInvalidTokenStandard
	}
	return TokenStandard(b), nil
}

// TokenStandardFromString - inverse of String
func TokenStandardFromString(s string) (TokenStandard, error) {
	for i, name := range tokenStandardNames {
		if name == s {
			return TokenStandard(i), nil
		}
	}
	return tokenStandardLimit, fault.ErrInvalidTokenStandard
}

func (ts TokenStandard) String() string {
	if ts < tokenStandardLimit {
		return tokenStandardNames[ts]
	}
	return "Invalid"
}

// IsProgrammable - true for the rule set governed standards
func (ts TokenStandard) IsProgrammable() bool {
	return ProgrammableNonFungible == ts || ProgrammableNonFungibleEdition == ts
}

// UseMethod - how a limited use token is consumed
type UseMethod uint8

// use methods - never reorder
const (
	Burn UseMethod = iota
	Multiple
	Single
	useMethodLimit
)

var useMethodNames = [...]string{
	Burn:     "Burn",
	Multiple: "Multiple",
	Single:   "Single",
}

// UseMethodFromByte - validate a stored use method
func UseMethodFromByte(b byte) (UseMethod, error) {
	if UseMethod(b) >= useMethodLimit {
		return useMethodLimit, fault.ErrInvalidUseMethod
	}
	return UseMethod(b), nil
}

func (m UseMethod) String() string {
	if m < useMethodLimit {
		return useMethodNames[m]
	}
	return "Invalid"
}

// TokenState - lock state of a programmable token
type TokenState uint8

// token states - never reorder
const (
	Unlocked TokenState = iota
	Locked
	Listed
	tokenStateLimit
)

var tokenStateNames = [...]string{
	Unlocked: "Unlocked",
	Locked:   "Locked",
	Listed:   "Listed",
}

// TokenStateFromByte - validate a stored token state
func TokenStateFromByte(b byte) (TokenState, error) {
	if TokenState(b) >= tokenStateLimit {
		return tokenStateLimit, fault.ErrInvalidTokenState
	}
	return TokenState(b), nil
}

func (s TokenState) String() string {
	if s < tokenStateLimit {
		return tokenStateNames[s]
	}
	return "Invalid"
}

// MarshalText - names rather than numbers in JSON
func (k Key) MarshalText() ([]byte, error)            { return []byte(k.String()), nil }
func (ts TokenStandard) MarshalText() ([]byte, error) { return []byte(ts.String()), nil }
func (m UseMethod) MarshalText() ([]byte, error)      { return []byte(m.String()), nil }
func (s TokenState) MarshalText() ([]byte, error)     { return []byte(s.String()), nil }

// UnmarshalText - a token standard from its name
func (ts *TokenStandard) UnmarshalText(s []byte) error {
	v, err := TokenStandardFromString(string(s))
	if nil != err {
		return err
	}
	*ts = v
	return nil
}
