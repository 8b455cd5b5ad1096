// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/identity"
	"github.com/bitmark-inc/tokenmetadata/layout"
	"github.com/bitmark-inc/tokenmetadata/metadatarecord"
)

// account kinds
const (
	kindForeign       = "foreign"
	kindEmpty         = "empty"
	kindTokenMetadata = "token-metadata"
	kindUnknown       = "unknown"
)

type tokenMetadataDescription struct {
	UpdateAuthority *address.Address `json:"updateAuthority"`
	Mint            address.Address  `json:"mint"`
	Name            string           `json:"name"`
	Symbol          string           `json:"symbol"`
	URI             string           `json:"uri"`
	Pairs           []layout.Pair    `json:"additionalMetadata"`
}

type accountDescription struct {
	Address       address.Address                           `json:"address"`
	Owner         address.Address                           `json:"owner"`
	Lamports      uint64                                    `json:"lamports"`
	Length        int                                       `json:"length"`
	Digest        string                                    `json:"digest"`
	Kind          string                                    `json:"kind"`
	Error         string                                    `json:"error,omitempty"`
	Metadata      *metadatarecord.Metadata                  `json:"metadata,omitempty"`
	TokenMetadata *tokenMetadataDescription                 `json:"tokenMetadata,omitempty"`
	UseAuthority  *metadatarecord.UseAuthorityRecord        `json:"useAuthority,omitempty"`
	Collection    *metadatarecord.CollectionAuthorityRecord `json:"collectionAuthority,omitempty"`
	Delegate      *metadatarecord.DelegateRecord            `json:"delegate,omitempty"`
}

// decode whatever record the account holds
//
// a record that fails to decode is reported in Error, not returned
func describe(info *account.Info) (*accountDescription, error) {
	digest, err := info.Digest()
	if nil != err {
		return nil, err
	}

	d := &accountDescription{
		Address:  info.Key,
		Owner:    info.Owner,
		Lamports: info.Lamports,
		Length:   info.DataLen(),
		Digest:   hex.EncodeToString(digest[:]),
		Kind:     kindUnknown,
	}

	data := info.DataUnchecked()

	switch {
	case !identity.IsProgramOwned(info.Owner):
		d.Kind = kindForeign
		return d, nil
	case 0 == len(data):
		d.Kind = kindEmpty
		return d, nil
	case layout.TokenMetadataLength == len(data):
		d.Kind = kindTokenMetadata
		d.TokenMetadata, err = describeTokenMetadata(info)
		setError(d, err)
		return d, nil
	}

	key, err := metadatarecord.KeyFromByte(data[0])
	if nil != err {
		setError(d, err)
		return d, nil
	}
	d.Kind = key.String()

	switch key {
	case metadatarecord.KeyMetadataV1:
		d.Metadata, err = metadatarecord.DeserializeMetadata(data)
	case metadatarecord.KeyUseAuthorityRecord:
		var record metadatarecord.UseAuthorityRecord
		record, err = metadatarecord.SafeDeserializeUseAuthorityRecord(data)
		d.UseAuthority = &record
	case metadatarecord.KeyCollectionAuthorityRecord:
		var record metadatarecord.CollectionAuthorityRecord
		record, err = metadatarecord.SafeDeserializeCollectionAuthorityRecord(data)
		d.Collection = &record
	case metadatarecord.KeyMetadataDelegate, metadatarecord.KeyHolderDelegate:
		var record metadatarecord.DelegateRecord
		record, err = metadatarecord.SafeDeserializeDelegateRecord(data, key)
		d.Delegate = &record
	}
	setError(d, err)
	return d, nil
}

func describeTokenMetadata(info *account.Info) (*tokenMetadataDescription, error) {
	view, err := layout.Load(info)
	if nil != err {
		return nil, err
	}
	defer view.Release()

	t := &tokenMetadataDescription{
		Mint:   view.Mint(),
		Name:   view.Name(),
		Symbol: view.Symbol(),
		URI:    view.URI(),
		Pairs:  view.Pairs(),
	}
	if view.HasUpdateAuthority() {
		a := view.UpdateAuthority()
		t.UpdateAuthority = &a
	}
	return t, nil
}

func setError(d *accountDescription, err error) {
	if nil != err {
		d.Error = err.Error()
		d.Metadata = nil
		d.TokenMetadata = nil
		d.UseAuthority = nil
		d.Collection = nil
		d.Delegate = nil
	}
}
