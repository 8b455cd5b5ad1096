// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/wire"
)

// DelegateRecordSize - key, bump and three addresses
const DelegateRecordSize = 1 + 1 + 3*address.Length

// MetadataDelegateRole - the kind of authority a metadata delegate holds
type MetadataDelegateRole uint8

// metadata delegate roles in wire order
const (
	AuthorityItemDelegate MetadataDelegateRole = iota
	CollectionDelegate
	UseDelegate
	DataDelegate
	ProgrammableConfigDelegate
	DataItemDelegate
	CollectionItemDelegate
	ProgrammableConfigItemDelegate
	metadataDelegateRoleLimit
)

// seed strings used when deriving delegate record addresses
var metadataDelegateSeeds = [...]string{
	AuthorityItemDelegate:          "authority_item_delegate",
	CollectionDelegate:             "collection_delegate",
	UseDelegate:                    "use_delegate",
	DataDelegate:                   "data_delegate",
	ProgrammableConfigDelegate:     "programmable_config_delegate",
	DataItemDelegate:               "data_item_delegate",
	CollectionItemDelegate:         "collection_item_delegate",
	ProgrammableConfigItemDelegate: "prog_config_item_delegate",
}

// String - the seed string of the role
func (role MetadataDelegateRole) String() string {
	if role >= metadataDelegateRoleLimit {
		return "unknown"
	}
	return metadataDelegateSeeds[role]
}

// MetadataDelegateRoleFromString - parse a seed string
func MetadataDelegateRoleFromString(s string) (MetadataDelegateRole, error) {
	for i := MetadataDelegateRole(0); i < metadataDelegateRoleLimit; i += 1 {
		if s == metadataDelegateSeeds[i] {
			return i, nil
		}
	}
	return metadataDelegateRoleLimit, fault.ErrInvalidDelegateRole
}

// HolderDelegateRole - the kind of authority a holder delegate holds
type HolderDelegateRole uint8

// holder delegate roles
const (
	PrintDelegate HolderDelegateRole = iota
	holderDelegateRoleLimit
)

var holderDelegateSeeds = [...]string{
	PrintDelegate: "print_delegate",
}

// String - the seed string of the role
func (role HolderDelegateRole) String() string {
	if role >= holderDelegateRoleLimit {
		return "unknown"
	}
	return holderDelegateSeeds[role]
}

// HolderDelegateRoleFromString - parse a seed string
func HolderDelegateRoleFromString(s string) (HolderDelegateRole, error) {
	for i := HolderDelegateRole(0); i < holderDelegateRoleLimit; i += 1 {
		if s == holderDelegateSeeds[i] {
			return i, nil
		}
	}
	return holderDelegateRoleLimit, fault.ErrInvalidDelegateRole
}

// DelegateRecord - the shared layout of metadata and holder delegate
// records, Key tells them apart
type DelegateRecord struct {
	Key             Key             `json:"key"`
	Bump            uint8           `json:"bump"`
	Mint            address.Address `json:"mint"`
	Delegate        address.Address `json:"delegate"`
	UpdateAuthority address.Address `json:"updateAuthority"`
}

// NewMetadataDelegateRecord - a metadata delegate with the default bump
func NewMetadataDelegateRecord(mint address.Address, delegate address.Address, updateAuthority address.Address) DelegateRecord {
	return DelegateRecord{
		Key:             KeyMetadataDelegate,
		Bump:            defaultBump,
		Mint:            mint,
		Delegate:        delegate,
		UpdateAuthority: updateAuthority,
	}
}

// NewHolderDelegateRecord - a holder delegate with the default bump
func NewHolderDelegateRecord(mint address.Address, delegate address.Address, updateAuthority address.Address) DelegateRecord {
	d := NewMetadataDelegateRecord(mint, delegate, updateAuthority)
	d.Key = KeyHolderDelegate
	return d
}

// Encode - fixed layout, no padding
func (d DelegateRecord) Encode(w *wire.Writer) {
	w.PutU8(uint8(d.Key))
	w.PutU8(d.Bump)
	w.PutAddress(d.Mint)
	w.PutAddress(d.Delegate)
	w.PutAddress(d.UpdateAuthority)
}

// Serialize - the full account image
func (d DelegateRecord) Serialize() []byte {
	return wire.Marshal(d)
}

// SafeDeserializeDelegateRecord - strict size check and the key must be
// the expected delegate kind
func SafeDeserializeDelegateRecord(data []byte, expected Key) (DelegateRecord, error) {
	d := DelegateRecord{}
	if DelegateRecordSize != len(data) {
		return d, fault.ErrInvalidData
	}
	if err := expectKey(data, expected); nil != err {
		return d, err
	}

	r := wire.NewReader(data)
	b, _ := r.U8()
	d.Key = Key(b)
	d.Bump, _ = r.U8()
	d.Mint, _ = r.Address()
	d.Delegate, _ = r.Address()
	d.UpdateAuthority, _ = r.Address()
	return d, nil
}

// LoadDelegateRecord - decode then check the owner
func LoadDelegateRecord(info *account.Info, expected Key) (DelegateRecord, error) {
	d := DelegateRecord{}
	err := loadTyped(info, func(data []byte) error {
		var err error
		d, err = SafeDeserializeDelegateRecord(data, expected)
		return err
	})
	return d, err
}

// Save - write the record to an account of DelegateRecordSize bytes
func (d DelegateRecord) Save(info *account.Info) error {
	return saveTyped(info, d.Serialize())
}
