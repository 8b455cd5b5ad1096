// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk account ledger
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte account address
// 4. *others*     = byte values of various length
//
// Accounts:
//
//   A ++ address               - account record
//                                data: version ++ owner ++ lamports ++ data length ++ data
//
// Metadata index:
//
//   M ++ mint address          - metadata account holding the mint's metadata
//                                data: address
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
