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

// account sizes, including trailing padding
const (
	UseAuthorityRecordSize        = 18
	CollectionAuthorityRecordSize = 35
)

// the bump seed given to records created without one
const defaultBump = 255

// UseAuthorityRecord - permission to use a limited use token
type UseAuthorityRecord struct {
	Key         Key    `json:"key"`
	AllowedUses uint64 `json:"allowedUses"`
	Bump        uint8  `json:"bump"`
}

// NewUseAuthorityRecord - the record before any uses are granted
func NewUseAuthorityRecord() UseAuthorityRecord {
	return UseAuthorityRecord{
		Key:  KeyUseAuthorityRecord,
		Bump: defaultBump,
	}
}

// Encode - key, allowed uses, bump; padding is added by Serialize
func (u UseAuthorityRecord) Encode(w *wire.Writer) {
	w.PutU8(uint8(u.Key))
	w.PutU64(u.AllowedUses)
	w.PutU8(u.Bump)
}

// Serialize - the full account image
func (u UseAuthorityRecord) Serialize() ([]byte, error) {
	return PadLength(wire.Marshal(u), UseAuthorityRecordSize)
}

// BumpEmpty - a record whose bump was never set
func (u UseAuthorityRecord) BumpEmpty() bool {
	return 0 == u.Bump && KeyUseAuthorityRecord == u.Key
}

// SafeDeserializeUseAuthorityRecord - strict size and key checks
func SafeDeserializeUseAuthorityRecord(data []byte) (UseAuthorityRecord, error) {
	u := UseAuthorityRecord{}
	if UseAuthorityRecordSize != len(data) {
		return u, fault.ErrInvalidData
	}
	if err := expectKey(data, KeyUseAuthorityRecord); nil != err {
		return u, err
	}

	r := wire.NewReader(data)
	b, _ := r.U8()
	u.Key = Key(b)
	u.AllowedUses, _ = r.U64()
	u.Bump, _ = r.U8()
	return u, nil
}

// UseAuthorityRecordFromBytes - any failure is a DataTypeMismatch
func UseAuthorityRecordFromBytes(data []byte) (UseAuthorityRecord, error) {
	u, err := SafeDeserializeUseAuthorityRecord(data)
	if nil != err {
		return u, fault.DataTypeMismatch
	}
	return u, nil
}

// LoadUseAuthorityRecord - decode then check the owner
func LoadUseAuthorityRecord(info *account.Info) (UseAuthorityRecord, error) {
	u := UseAuthorityRecord{}
	err := loadTyped(info, func(data []byte) error {
		var err error
		u, err = SafeDeserializeUseAuthorityRecord(data)
		return err
	})
	return u, err
}

// Save - write the record to an account of UseAuthorityRecordSize bytes
func (u UseAuthorityRecord) Save(info *account.Info) error {
	buffer, err := u.Serialize()
	if nil != err {
		return err
	}
	return saveTyped(info, buffer)
}

// CollectionAuthorityRecord - permission to manage a collection
type CollectionAuthorityRecord struct {
	Key             Key              `json:"key"`
	Bump            uint8            `json:"bump"`
	UpdateAuthority *address.Address `json:"updateAuthority"`
}

// NewCollectionAuthorityRecord - a record with no update authority
func NewCollectionAuthorityRecord() CollectionAuthorityRecord {
	return CollectionAuthorityRecord{
		Key:  KeyCollectionAuthorityRecord,
		Bump: defaultBump,
	}
}

// Encode - key, bump, optional update authority
func (c CollectionAuthorityRecord) Encode(w *wire.Writer) {
	w.PutU8(uint8(c.Key))
	w.PutU8(c.Bump)
	w.PutOptionalAddress(c.UpdateAuthority)
}

// Serialize - the full account image
func (c CollectionAuthorityRecord) Serialize() ([]byte, error) {
	return PadLength(wire.Marshal(c), CollectionAuthorityRecordSize)
}

// SafeDeserializeCollectionAuthorityRecord - strict size and key checks
func SafeDeserializeCollectionAuthorityRecord(data []byte) (CollectionAuthorityRecord, error) {
	c := CollectionAuthorityRecord{}
	if CollectionAuthorityRecordSize != len(data) {
		return c, fault.ErrInvalidData
	}
	if err := expectKey(data, KeyCollectionAuthorityRecord); nil != err {
		return c, err
	}

	r := wire.NewReader(data)
	b, _ := r.U8()
	c.Key = Key(b)
	c.Bump, _ = r.U8()
	ua, err := r.OptionalAddress()
	if nil != err {
		return c, fault.ErrInvalidData
	}
	c.UpdateAuthority = ua
	return c, nil
}

// CollectionAuthorityRecordFromBytes - any failure is a DataTypeMismatch
func CollectionAuthorityRecordFromBytes(data []byte) (CollectionAuthorityRecord, error) {
	c, err := SafeDeserializeCollectionAuthorityRecord(data)
	if nil != err {
		return c, fault.DataTypeMismatch
	}
	return c, nil
}

// LoadCollectionAuthorityRecord - decode then check the owner
func LoadCollectionAuthorityRecord(info *account.Info) (CollectionAuthorityRecord, error) {
	c := CollectionAuthorityRecord{}
	err := loadTyped(info, func(data []byte) error {
		var err error
		c, err = SafeDeserializeCollectionAuthorityRecord(data)
		return err
	})
	return c, err
}

// Save - write the record to an account of
// CollectionAuthorityRecordSize bytes
func (c CollectionAuthorityRecord) Save(info *account.Info) error {
	buffer, err := c.Serialize()
	if nil != err {
		return err
	}
	return saveTyped(info, buffer)
}

// the first byte must be exactly the expected key
func expectKey(data []byte, expected Key) error {
	key, err := KeyFromByte(data[0])
	if nil != err || expected != key {
		return fault.DataTypeMismatch
	}
	return nil
}
