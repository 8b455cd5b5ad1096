// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord_test

import (
	"strings"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/fixtures"
	"github.com/bitmark-inc/tokenmetadata/metadatarecord"
)

// mirror types for an independent borsh encoding
type borshCreator struct {
	Address  [32]byte
	Verified bool
	Share    uint8
}

type borshCollection struct {
	Verified bool
	Key      [32]byte
}

type borshUses struct {
	UseMethod uint8
	Remaining uint64
	Total     uint64
}

type borshAssetData struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	Creators             *[]borshCreator
	PrimarySaleHappened  bool
	IsMutable            bool
	TokenStandard        uint8
	Collection           *borshCollection
	Uses                 *borshUses
	CollectionDetails    *[8]byte
	RuleSet              *[32]byte
}

func fullAssetData() metadatarecord.AssetData {
	ruleSet := fixtures.Stranger.Address
	a := metadatarecord.NewAssetData(metadatarecord.ProgrammableNonFungible, "Bitmark", "BMK", "https://example.com/1.json")
	a.SellerFeeBasisPoints = 500
	a.Creators = []metadatarecord.Creator{
		{Address: fixtures.Authority.Address, Verified: true, Share: 60},
		{Address: fixtures.Payer.Address, Verified: false, Share: 40},
	}
	a.PrimarySaleHappened = true
	a.Collection = &metadatarecord.Collection{Verified: true, Key: fixtures.Mint.Address}
	a.Uses = &metadatarecord.Uses{UseMethod: metadatarecord.Single, Remaining: 1, Total: 1}
	a.RuleSet = &ruleSet
	return a
}

func toBorsh(a metadatarecord.AssetData) borshAssetData {
	b := borshAssetData{
		Name:                 a.Name,
		Symbol:               a.Symbol,
		URI:                  a.URI,
		SellerFeeBasisPoints: a.SellerFeeBasisPoints,
		PrimarySaleHappened:  a.PrimarySaleHappened,
		IsMutable:            a.IsMutable,
		TokenStandard:        uint8(a.TokenStandard),
	}
	if nil != a.Creators {
		creators := make([]borshCreator, 0, len(a.Creators))
		for _, c := range a.Creators {
			creators = append(creators, borshCreator{Address: c.Address, Verified: c.Verified, Share: c.Share})
		}
		b.Creators = &creators
	}
	if nil != a.Collection {
		b.Collection = &borshCollection{Verified: a.Collection.Verified, Key: a.Collection.Key}
	}
	if nil != a.Uses {
		b.Uses = &borshUses{UseMethod: uint8(a.Uses.UseMethod), Remaining: a.Uses.Remaining, Total: a.Uses.Total}
	}
	if nil != a.RuleSet {
		r := [32]byte(*a.RuleSet)
		b.RuleSet = &r
	}
	return b
}

func TestAssetDataMatchesBorsh(t *testing.T) {
	items := []metadatarecord.AssetData{
		metadatarecord.NewAssetData(metadatarecord.NonFungible, "", "", ""),
		metadatarecord.NewAssetData(metadatarecord.Fungible, "name", "SYM", "uri"),
		fullAssetData(),
	}

	for i, a := range items {
		expected, err := borsh.Serialize(toBorsh(a))
		require.Nil(t, err, "%d: borsh", i)

		actual := a.Serialize()
		assert.Equal(t, expected, actual, "%d: bytes", i)
		assert.Equal(t, len(actual), a.SerializedLength(), "%d: length", i)
	}
}

func TestAssetDataRoundTrip(t *testing.T) {
	a := fullAssetData()
	d := metadatarecord.NewCollectionDetailsV1(12)
	a.CollectionDetails = &d

	buffer := a.Serialize()
	assert.Equal(t, len(buffer), a.SerializedLength(), "length")

	decoded, err := metadatarecord.DeserializeAssetData(buffer)
	require.Nil(t, err, "deserialize")
	assert.Equal(t, a, decoded, "round trip")

	// trailing bytes are ignored
	decoded, err = metadatarecord.DeserializeAssetData(append(buffer, 0xff, 0xff))
	require.Nil(t, err, "deserialize with trailing bytes")
	assert.Equal(t, a, decoded, "round trip with trailing bytes")
}

func TestAssetDataEmptyCreators(t *testing.T) {
	a := metadatarecord.NewAssetData(metadatarecord.NonFungible, "n", "s", "u")
	a.Creators = []metadatarecord.Creator{}

	decoded, err := metadatarecord.DeserializeAssetData(a.Serialize())
	require.Nil(t, err, "deserialize")
	assert.NotNil(t, decoded.Creators, "present but empty")
	assert.Equal(t, 0, len(decoded.Creators), "no creators")

	a.Creators = nil
	decoded, err = metadatarecord.DeserializeAssetData(a.Serialize())
	require.Nil(t, err, "deserialize")
	assert.Nil(t, decoded.Creators, "absent")
}

func TestAssetDataTruncated(t *testing.T) {
	buffer := fullAssetData().Serialize()
	for n := 0; n < len(buffer); n += 1 {
		_, err := metadatarecord.DeserializeAssetData(buffer[:n])
		assert.NotNil(t, err, "truncated to: %d", n)
	}
}

func TestAssetDataInvalidBytes(t *testing.T) {
	a := metadatarecord.NewAssetData(metadatarecord.NonFungible, "", "", "")
	buffer := a.Serialize()
	// 3 empty strings, fee, creators presence
	optionOffset := 4 + 4 + 4 + 2

	items := []struct {
		offset int
		value  byte
		err    error
	}{
		{optionOffset + 1, 2, fault.ErrInvalidBoolean},
		{optionOffset + 2, 7, fault.ErrInvalidBoolean},
		{optionOffset + 3, 6, fault.ErrInvalidTokenStandard},
	}

	for _, item := range items {
		b := append([]byte{}, buffer...)
		b[item.offset] = item.value
		_, err := metadatarecord.DeserializeAssetData(b)
		assert.Equal(t, item.err, err, "offset: %d", item.offset)
	}
}

func TestAssetDataPresenceOtherThanOne(t *testing.T) {
	a := metadatarecord.NewAssetData(metadatarecord.NonFungible, "", "", "")
	buffer := a.Serialize()
	// 3 empty strings, fee, creators presence
	optionOffset := 4 + 4 + 4 + 2

	// creators, collection, uses, collection details, rule set
	offsets := []int{optionOffset, optionOffset + 4, optionOffset + 5, optionOffset + 6, optionOffset + 7}
	for _, offset := range offsets {
		for _, value := range []byte{2, 9, 0xff} {
			b := append([]byte{}, buffer...)
			b[offset] = value
			decoded, err := metadatarecord.DeserializeAssetData(b)
			require.Nil(t, err, "offset: %d  value: %d", offset, value)
			assert.Equal(t, a, decoded, "offset: %d  value: %d", offset, value)
		}
	}
}

func TestAssetDataCreatorVerifiedNonZero(t *testing.T) {
	a := fullAssetData()
	buffer := a.Serialize()

	// strings, fee, creators presence and count, first creator, second creator address
	offset := 4 + len(a.Name) + 4 + len(a.Symbol) + 4 + len(a.URI) + 2 + 1 + 4 + 34 + 32
	require.Equal(t, byte(0), buffer[offset], "second creator unverified")
	buffer[offset] = 2

	decoded, err := metadatarecord.DeserializeAssetData(buffer)
	require.Nil(t, err, "deserialize")
	assert.True(t, decoded.Creators[1].Verified, "verified")
	assert.Equal(t, a.Creators[1].Address, decoded.Creators[1].Address, "address")
	assert.Equal(t, a.Creators[1].Share, decoded.Creators[1].Share, "share")
}

func TestAssetDataCreatorCountTooLarge(t *testing.T) {
	a := metadatarecord.NewAssetData(metadatarecord.NonFungible, "", "", "")
	a.Creators = []metadatarecord.Creator{}
	buffer := a.Serialize()

	// count follows the presence byte
	countOffset := 4 + 4 + 4 + 2 + 1
	buffer[countOffset+3] = 0x7f

	_, err := metadatarecord.DeserializeAssetData(buffer)
	assert.Equal(t, fault.ErrTruncatedData, err, "huge count")
}

func TestAssetDataValidate(t *testing.T) {
	ok := fullAssetData()
	assert.Nil(t, ok.Validate(), "valid")

	items := []struct {
		name   string
		modify func(a *metadatarecord.AssetData)
		err    error
	}{
		{"name", func(a *metadatarecord.AssetData) { a.Name = strings.Repeat("n", 33) }, fault.NameTooLong},
		{"symbol", func(a *metadatarecord.AssetData) { a.Symbol = strings.Repeat("s", 11) }, fault.SymbolTooLong},
		{"uri", func(a *metadatarecord.AssetData) { a.URI = strings.Repeat("u", 201) }, fault.UriTooLong},
		{"fee", func(a *metadatarecord.AssetData) { a.SellerFeeBasisPoints = 10001 }, fault.InvalidBasisPoints},
		{"no creators", func(a *metadatarecord.AssetData) { a.Creators = []metadatarecord.Creator{} }, fault.CreatorsMustBeAtleastOne},
		{"too many creators", func(a *metadatarecord.AssetData) {
			a.Creators = make([]metadatarecord.Creator, 6)
			for i := range a.Creators {
				a.Creators[i].Address = fixtures.MakeKeypair(byte(10 + i)).Address
			}
		}, fault.CreatorsTooLong},
		{"duplicate creator", func(a *metadatarecord.AssetData) { a.Creators[1].Address = a.Creators[0].Address }, fault.DuplicateCreatorAddress},
		{"share total", func(a *metadatarecord.AssetData) { a.Creators[1].Share = 39 }, fault.ShareTotalMustBe100},
	}

	for _, item := range items {
		a := fullAssetData()
		item.modify(&a)
		assert.Equal(t, item.err, a.Validate(), item.name)
	}

	limits := fullAssetData()
	limits.Name = strings.Repeat("n", 32)
	limits.Symbol = strings.Repeat("s", 10)
	limits.URI = strings.Repeat("u", 200)
	limits.SellerFeeBasisPoints = 10000
	assert.Nil(t, limits.Validate(), "at the limits")
}

func TestAssetDataAsData(t *testing.T) {
	a := fullAssetData()

	d := a.AsData()
	assert.Equal(t, a.Name, d.Name, "name")
	assert.Equal(t, a.SellerFeeBasisPoints, d.SellerFeeBasisPoints, "fee")
	assert.Equal(t, a.Creators, d.Creators, "creators")

	d.Creators[0].Share = 1
	assert.Equal(t, uint8(60), a.Creators[0].Share, "copy does not alias")

	d2 := a.AsDataV2()
	require.NotNil(t, d2.Collection, "collection")
	require.NotNil(t, d2.Uses, "uses")
	d2.Collection.Verified = false
	d2.Uses.Remaining = 0
	assert.True(t, a.Collection.Verified, "collection does not alias")
	assert.Equal(t, uint64(1), a.Uses.Remaining, "uses does not alias")

	none := metadatarecord.NewAssetData(metadatarecord.NonFungible, "", "", "")
	assert.Nil(t, none.AsData().Creators, "absent creators stay absent")
}

func TestNewAssetData(t *testing.T) {
	a := metadatarecord.NewAssetData(metadatarecord.Fungible, "n", "s", "u")
	assert.True(t, a.IsMutable, "mutable")
	assert.False(t, a.PrimarySaleHappened, "primary sale")
	assert.Equal(t, uint16(0), a.SellerFeeBasisPoints, "fee")
	assert.Nil(t, a.Creators, "creators")
	assert.Equal(t, metadatarecord.Fungible, a.TokenStandard, "token standard")
}
