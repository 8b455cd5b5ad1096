// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/identity"
	"github.com/bitmark-inc/tokenmetadata/layout"
	"github.com/bitmark-inc/tokenmetadata/metadatarecord"
)

// PutAccount - stage an account record and its mint index entry
func PutAccount(trx Transaction, info *account.Info) {
	trx.Put(Pool.Accounts, info.Key.Bytes(), info.Pack())

	if mint, ok := metadataMint(info); ok {
		trx.Put(Pool.MetadataByMint, mint.Bytes(), info.Key.Bytes())
	}
}

// DeleteAccount - stage removal of an account record
//
// a mint index entry pointing at the account is removed as well
func DeleteAccount(trx Transaction, key address.Address) {
	packed := trx.Get(Pool.Accounts, key.Bytes())
	if nil == packed {
		return
	}
	trx.Delete(Pool.Accounts, key.Bytes())

	info, err := unpackStored(key, packed)
	if nil != err {
		return
	}
	if mint, ok := metadataMint(info); ok {
		indexed := trx.Get(Pool.MetadataByMint, mint.Bytes())
		if nil != indexed && string(key.Bytes()) == string(indexed) {
			trx.Delete(Pool.MetadataByMint, mint.Bytes())
		}
	}
}

// GetAccount - read one account, including staged writes
func GetAccount(key address.Address) (*account.Info, error) {
	packed := Pool.Accounts.Get(key.Bytes())
	if nil == packed {
		return nil, fault.ErrAccountNotFound
	}
	return unpackStored(key, packed)
}

// MetadataForMint - address of the metadata account indexed for a mint
func MetadataForMint(mint address.Address) (address.Address, error) {
	indexed := Pool.MetadataByMint.Get(mint.Bytes())
	if nil == indexed {
		return address.Address{}, fault.ErrAccountNotFound
	}
	return address.FromBytes(indexed)
}

// ListAccounts - run f over every committed account in key order
func ListAccounts(f func(info *account.Info) error) error {
	cursor := Pool.Accounts.NewFetchCursor()
	return cursor.Map(func(key []byte, value []byte) error {
		a, err := address.FromBytes(key)
		if nil != err {
			return err
		}
		info, err := unpackStored(a, value)
		if nil != err {
			return err
		}
		return f(info)
	})
}

// a record that fails to unpack was damaged after it was written
func unpackStored(key address.Address, packed []byte) (*account.Info, error) {
	info, err := account.Unpack(key, packed)
	if nil != err {
		fault.Criticalf("account: %s  corrupt record: %x  error: %s", key, packed, err)
		return nil, err
	}
	return info, nil
}

// mint of a program owned metadata account of either layout
func metadataMint(info *account.Info) (address.Address, bool) {
	if !identity.IsProgramOwned(info.Owner) {
		return address.Address{}, false
	}

	data := info.DataUnchecked()

	if layout.TokenMetadataLength == len(data) {
		view, err := layout.View(data)
		if nil != err || view.Mint().IsZero() {
			return address.Address{}, false
		}
		return view.Mint(), true
	}

	if 0 == len(data) || byte(metadatarecord.KeyMetadataV1) != data[0] {
		return address.Address{}, false
	}
	metadata, err := metadatarecord.DeserializeMetadata(data)
	if nil != err {
		return address.Address{}, false
	}
	return metadata.Mint, true
}

// FetchAccounts - up to count committed accounts in key order,
// starting at start if not nil
func FetchAccounts(start *address.Address, count int) ([]*account.Info, error) {
	cursor := Pool.Accounts.NewFetchCursor()
	if nil != start {
		cursor.Seek(start.Bytes())
	}
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	infos := make([]*account.Info, 0, len(elements))
	for _, e := range elements {
		a, err := address.FromBytes(e.Key)
		if nil != err {
			return nil, err
		}
		info, err := unpackStored(a, e.Value)
		if nil != err {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
