// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadatarecord - variable shape metadata account records
//
// Records are decoded at the start of an operation, changed, then
// serialized back.  Each record has a single Encode routine used for
// both its bytes and its length.
//
// Enumerations are one byte assigned by declaration order.  Decoding
// follows the deployed byte rules: Metadata flags, Metadata presence
// bytes and creator or collection verification read any non-zero byte
// as true; AssetData presence bytes are present only when 1, while
// its own two booleans must be 0 or 1.  CollectionDetails carries
// no discriminant on the wire: eight zero bytes decode as V2 and any
// other value as V1.
package metadatarecord
