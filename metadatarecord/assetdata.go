// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/wire"
)

// limits checked by Validate
const (
	MaxNameLength     = 32
	MaxSymbolLength   = 10
	MaxURILength      = 200
	MaxCreatorLimit   = 5
	MaxBasisPoints    = 10000
	creatorShareTotal = 100
)

// AssetData - the descriptive part of a metadata account
type AssetData struct {
	Name                 string             `json:"name"`
	Symbol               string             `json:"symbol"`
	URI                  string             `json:"uri"`
	SellerFeeBasisPoints uint16             `json:"sellerFeeBasisPoints"` // 0-10000
	Creators             []Creator          `json:"creators"`             // nil when absent
	PrimarySaleHappened  bool               `json:"primarySaleHappened"`
	IsMutable            bool               `json:"isMutable"`
	TokenStandard        TokenStandard      `json:"tokenStandard"`
	Collection           *Collection        `json:"collection"`
	Uses                 *Uses              `json:"uses"`
	CollectionDetails    *CollectionDetails `json:"collectionDetails"`
	RuleSet              *address.Address   `json:"ruleSet"`
}

// NewAssetData - a mutable asset with no royalties and no options
func NewAssetData(tokenStandard TokenStandard, name string, symbol string, uri string) AssetData {
	return AssetData{
		Name:          name,
		Symbol:        symbol,
		URI:           uri,
		IsMutable:     true,
		TokenStandard: tokenStandard,
	}
}

// Encode - the single layout definition, also used for the length
func (a AssetData) Encode(w *wire.Writer) {
	w.PutString(a.Name)
	w.PutString(a.Symbol)
	w.PutString(a.URI)
	w.PutU16(a.SellerFeeBasisPoints)
	encodeCreators(w, a.Creators)
	w.PutBool(a.PrimarySaleHappened)
	w.PutBool(a.IsMutable)
	w.PutU8(uint8(a.TokenStandard))

	w.PutPresence(nil != a.Collection)
	if nil != a.Collection {
		a.Collection.Encode(w)
	}
	w.PutPresence(nil != a.Uses)
	if nil != a.Uses {
		a.Uses.Encode(w)
	}
	w.PutPresence(nil != a.CollectionDetails)
	if nil != a.CollectionDetails {
		a.CollectionDetails.Encode(w)
	}
	w.PutOptionalAddress(a.RuleSet)
}

// SerializedLength - exactly len(Serialize())
func (a AssetData) SerializedLength() int {
	return wire.Size(a)
}

// Serialize - encode to a new exactly sized buffer
func (a AssetData) Serialize() []byte {
	return wire.Marshal(a)
}

// DeserializeAssetData - decode from the start of data, bytes after
// the record are ignored
func DeserializeAssetData(data []byte) (AssetData, error) {
	return decodeAssetData(wire.NewReader(data))
}

func decodeAssetData(r *wire.Reader) (AssetData, error) {
	a := AssetData{}
	var err error

	if a.Name, err = r.Text(); nil != err {
		return a, err
	}
	if a.Symbol, err = r.Text(); nil != err {
		return a, err
	}
	if a.URI, err = r.Text(); nil != err {
		return a, err
	}
	if a.SellerFeeBasisPoints, err = r.U16(); nil != err {
		return a, err
	}
	if a.Creators, err = decodeCreators(r); nil != err {
		return a, err
	}
	if a.PrimarySaleHappened, err = r.Bool(); nil != err {
		return a, err
	}
	if a.IsMutable, err = r.Bool(); nil != err {
		return a, err
	}

	b, err := r.U8()
	if nil != err {
		return a, err
	}
	if a.TokenStandard, err = TokenStandardFromByte(b); nil != err {
		return a, err
	}

	present, err := r.Some()
	if nil != err {
		return a, err
	}
	if present {
		c, err := decodeCollection(r)
		if nil != err {
			return a, err
		}
		a.Collection = &c
	}

	present, err = r.Some()
	if nil != err {
		return a, err
	}
	if present {
		u, err := decodeUses(r)
		if nil != err {
			return a, err
		}
		a.Uses = &u
	}

	present, err = r.Some()
	if nil != err {
		return a, err
	}
	if present {
		d, err := decodeCollectionDetails(r)
		if nil != err {
			return a, err
		}
		a.CollectionDetails = &d
	}

	present, err = r.Some()
	if nil != err {
		return a, err
	}
	if present {
		ruleSet, err := r.Address()
		if nil != err {
			return a, err
		}
		a.RuleSet = &ruleSet
	}
	return a, nil
}

// Validate - limits a newly created asset must respect
func (a AssetData) Validate() error {
	if len(a.Name) > MaxNameLength {
		return fault.NameTooLong
	}
	if len(a.Symbol) > MaxSymbolLength {
		return fault.SymbolTooLong
	}
	if len(a.URI) > MaxURILength {
		return fault.UriTooLong
	}
	if a.SellerFeeBasisPoints > MaxBasisPoints {
		return fault.InvalidBasisPoints
	}
	return validateCreators(a.Creators)
}

func validateCreators(creators []Creator) error {
	if nil == creators {
		return nil
	}
	if 0 == len(creators) {
		return fault.CreatorsMustBeAtleastOne
	}
	if len(creators) > MaxCreatorLimit {
		return fault.CreatorsTooLong
	}

	seen := make(map[address.Address]struct{}, len(creators))
	total := 0
	for _, c := range creators {
		if _, ok := seen[c.Address]; ok {
			return fault.DuplicateCreatorAddress
		}
		seen[c.Address] = struct{}{}
		total += int(c.Share)
	}
	if creatorShareTotal != total {
		return fault.ShareTotalMustBe100
	}
	return nil
}

// Data - the original descriptive fields
type Data struct {
	Name                 string    `json:"name"`
	Symbol               string    `json:"symbol"`
	URI                  string    `json:"uri"`
	SellerFeeBasisPoints uint16    `json:"sellerFeeBasisPoints"`
	Creators             []Creator `json:"creators"`
}

// DataV2 - Data plus collection and uses
type DataV2 struct {
	Name                 string      `json:"name"`
	Symbol               string      `json:"symbol"`
	URI                  string      `json:"uri"`
	SellerFeeBasisPoints uint16      `json:"sellerFeeBasisPoints"`
	Creators             []Creator   `json:"creators"`
	Collection           *Collection `json:"collection"`
	Uses                 *Uses       `json:"uses"`
}

// AsData - a copy sharing no memory with a
func (a AssetData) AsData() Data {
	return Data{
		Name:                 a.Name,
		Symbol:               a.Symbol,
		URI:                  a.URI,
		SellerFeeBasisPoints: a.SellerFeeBasisPoints,
		Creators:             cloneCreators(a.Creators),
	}
}

// AsDataV2 - a copy sharing no memory with a
func (a AssetData) AsDataV2() DataV2 {
	d := DataV2{
		Name:                 a.Name,
		Symbol:               a.Symbol,
		URI:                  a.URI,
		SellerFeeBasisPoints: a.SellerFeeBasisPoints,
		Creators:             cloneCreators(a.Creators),
	}
	if nil != a.Collection {
		c := *a.Collection
		d.Collection = &c
	}
	if nil != a.Uses {
		u := *a.Uses
		d.Uses = &u
	}
	return d
}

func cloneCreators(creators []Creator) []Creator {
	if nil == creators {
		return nil
	}
	c := make([]Creator, len(creators))
	copy(c, creators)
	return c
}
