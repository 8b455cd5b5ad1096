// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/wire"
)

// encoded sizes
const (
	CollectionLength        = 1 + address.Length
	CollectionDetailsLength = 8
)

// Collection - membership of a collection
type Collection struct {
	Verified bool            `json:"verified"`
	Key      address.Address `json:"key"`
}

// Encode - verified, key
func (c Collection) Encode(w *wire.Writer) {
	w.PutBool(c.Verified)
	w.PutAddress(c.Key)
}

func decodeCollection(r *wire.Reader) (Collection, error) {
	c := Collection{}
	var err error
	if c.Verified, err = r.Flag(); nil != err {
		return c, err
	}
	if c.Key, err = r.Address(); nil != err {
		return c, err
	}
	return c, nil
}

// CollectionDetailsVersion - which variant of CollectionDetails
type CollectionDetailsVersion uint8

// collection details variants
const (
	// V1 tracks the collection size, deprecated
	CollectionDetailsV1 CollectionDetailsVersion = iota
	CollectionDetailsV2
)

// CollectionDetails - present on collection parents
//
// only the 8 byte payload is stored; decoding infers the variant, so
// V1 with a zero size reads back as V2 and V2 with non-zero padding
// reads back as V1
type CollectionDetails struct {
	Version CollectionDetailsVersion      `json:"version"`
	Size    uint64                        `json:"size,omitempty"`    // V1 only
	Padding [CollectionDetailsLength]byte `json:"padding,omitempty"` // V2 only
}

// NewCollectionDetailsV1 - a sized collection
func NewCollectionDetailsV1(size uint64) CollectionDetails {
	return CollectionDetails{
		Version: CollectionDetailsV1,
		Size:    size,
	}
}

// NewCollectionDetailsV2 - the current variant
func NewCollectionDetailsV2(padding [CollectionDetailsLength]byte) CollectionDetails {
	return CollectionDetails{
		Version: CollectionDetailsV2,
		Padding: padding,
	}
}

// Encode - the payload only, no discriminant
func (d CollectionDetails) Encode(w *wire.Writer) {
	switch d.Version {
	case CollectionDetailsV1:
		w.PutU64(d.Size)
	default:
		w.PutRaw(d.Padding[:])
	}
}

func decodeCollectionDetails(r *wire.Reader) (CollectionDetails, error) {
	b, err := r.Raw(CollectionDetailsLength)
	if nil != err {
		return CollectionDetails{}, err
	}
	size := binary.LittleEndian.Uint64(b)
	if 0 == size {
		padding := [CollectionDetailsLength]byte{}
		copy(padding[:], b)
		return NewCollectionDetailsV2(padding), nil
	}
	return NewCollectionDetailsV1(size), nil
}
