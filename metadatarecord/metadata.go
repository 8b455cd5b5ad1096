// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/identity"
	"github.com/bitmark-inc/tokenmetadata/wire"
)

// Metadata - the variable length metadata account
//
// field order on the wire is the declaration order below
type Metadata struct {
	Key                 Key                 `json:"key"`
	UpdateAuthority     address.Address     `json:"updateAuthority"`
	Mint                address.Address     `json:"mint"`
	Data                AssetData           `json:"data"`
	PrimarySaleHappened bool                `json:"primarySaleHappened"`
	IsMutable           bool                `json:"isMutable"`
	EditionNonce        *uint8              `json:"editionNonce"`
	TokenStandard       *TokenStandard      `json:"tokenStandard"`
	Collection          *Collection         `json:"collection"`
	Uses                *Uses               `json:"uses"`
	CollectionDetails   *CollectionDetails  `json:"collectionDetails"`
	ProgrammableConfig  *ProgrammableConfig `json:"programmableConfig"`
}

// Encode - the single layout definition, also used for the length
func (m Metadata) Encode(w *wire.Writer) {
	w.PutU8(uint8(m.Key))
	w.PutAddress(m.UpdateAuthority)
	w.PutAddress(m.Mint)
	m.Data.Encode(w)
	w.PutBool(m.PrimarySaleHappened)
	w.PutBool(m.IsMutable)
	w.PutOptionalU8(m.EditionNonce)

	w.PutPresence(nil != m.TokenStandard)
	if nil != m.TokenStandard {
		w.PutU8(uint8(*m.TokenStandard))
	}
	w.PutPresence(nil != m.Collection)
	if nil != m.Collection {
		m.Collection.Encode(w)
	}
	w.PutPresence(nil != m.Uses)
	if nil != m.Uses {
		m.Uses.Encode(w)
	}
	w.PutPresence(nil != m.CollectionDetails)
	if nil != m.CollectionDetails {
		m.CollectionDetails.Encode(w)
	}
	w.PutPresence(nil != m.ProgrammableConfig)
	if nil != m.ProgrammableConfig {
		m.ProgrammableConfig.Encode(w)
	}
}

// SerializedLength - exactly len(Serialize()), the account size Save
// requires
func (m Metadata) SerializedLength() int {
	return wire.Size(m)
}

// Serialize - encode to a new exactly sized buffer
func (m Metadata) Serialize() []byte {
	return wire.Marshal(m)
}

// SaveTo - encode into a buffer of exactly SerializedLength bytes
//
// the account must already have been resized
func (m Metadata) SaveTo(buffer []byte) error {
	if m.SerializedLength() != len(buffer) {
		return fault.ErrBufferLengthMismatch
	}
	w := wire.NewWriter(len(buffer))
	m.Encode(w)
	copy(buffer, w.Bytes())
	return nil
}

// Save - write back to the account under an exclusive borrow
func (m Metadata) Save(info *account.Info) error {
	ref, err := info.TryBorrowMutData()
	if nil != err {
		return err
	}
	defer ref.Release()
	return m.SaveTo(ref.Data())
}

// DeserializeMetadata - decode from the start of data, bytes after
// the record are ignored
func DeserializeMetadata(data []byte) (*Metadata, error) {
	r := wire.NewReader(data)
	m := &Metadata{}

	b, err := r.U8()
	if nil != err {
		return nil, err
	}
	if m.Key, err = KeyFromByte(b); nil != err {
		return nil, err
	}
	if m.UpdateAuthority, err = r.Address(); nil != err {
		return nil, err
	}
	if m.Mint, err = r.Address(); nil != err {
		return nil, err
	}
	if m.Data, err = decodeAssetData(r); nil != err {
		return nil, err
	}
	// flags and presence bytes at this level are any non-zero value
	if m.PrimarySaleHappened, err = r.Flag(); nil != err {
		return nil, err
	}
	if m.IsMutable, err = r.Flag(); nil != err {
		return nil, err
	}

	present, err := r.Flag()
	if nil != err {
		return nil, err
	}
	if present {
		nonce, err := r.U8()
		if nil != err {
			return nil, err
		}
		m.EditionNonce = &nonce
	}

	present, err = r.Flag()
	if nil != err {
		return nil, err
	}
	if present {
		b, err := r.U8()
		if nil != err {
			return nil, err
		}
		ts, err := TokenStandardFromByte(b)
		if nil != err {
			return nil, err
		}
		m.TokenStandard = &ts
	}

	present, err = r.Flag()
	if nil != err {
		return nil, err
	}
	if present {
		c, err := decodeCollection(r)
		if nil != err {
			return nil, err
		}
		m.Collection = &c
	}

	present, err = r.Flag()
	if nil != err {
		return nil, err
	}
	if present {
		u, err := decodeUses(r)
		if nil != err {
			return nil, err
		}
		m.Uses = &u
	}

	present, err = r.Flag()
	if nil != err {
		return nil, err
	}
	if present {
		d, err := decodeCollectionDetails(r)
		if nil != err {
			return nil, err
		}
		m.CollectionDetails = &d
	}

	present, err = r.Flag()
	if nil != err {
		return nil, err
	}
	if present {
		p, err := decodeProgrammableConfig(r)
		if nil != err {
			return nil, err
		}
		m.ProgrammableConfig = &p
	}

	return m, nil
}

// LoadMetadata - decode a metadata account under a shared borrow
//
// any decoding failure is reported as InvalidAccountData
func LoadMetadata(info *account.Info) (*Metadata, error) {
	if !identity.IsProgramOwned(info.Owner) {
		return nil, fault.IncorrectOwner
	}

	ref, err := info.TryBorrowData()
	if nil != err {
		return nil, err
	}
	defer ref.Release()

	m, err := DeserializeMetadata(ref.Data())
	if nil != err {
		return nil, fault.InvalidAccountData
	}
	if KeyMetadataV1 != m.Key {
		return nil, fault.DataTypeMismatch
	}
	return m, nil
}
