// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/bitmark-inc/tokenmetadata/fault"
)

// FieldKind - which part of the record a Field changes
type FieldKind uint8

// field kinds, values are used on the wire
const (
	FieldName FieldKind = iota
	FieldSymbol
	FieldURI
	FieldKey
	fieldLimit
)

var fieldNames = [...]string{
	FieldName:   "name",
	FieldSymbol: "symbol",
	FieldURI:    "uri",
	FieldKey:    "key",
}

// Field - a single update; Key is only used by FieldKey
type Field struct {
	Kind  FieldKind `json:"kind"`
	Key   string    `json:"key,omitempty"`
	Value string    `json:"value"`
}

// IsValid - true for a known kind
func (k FieldKind) IsValid() bool {
	return k < fieldLimit
}

// String - lower case name
func (k FieldKind) String() string {
	if k.IsValid() {
		return fieldNames[k]
	}
	return "unknown"
}

// FieldKindFromString - inverse of String
func FieldKindFromString(s string) (FieldKind, error) {
	for i, name := range fieldNames {
		if name == s {
			return FieldKind(i), nil
		}
	}
	return fieldLimit, fault.InvalidArgument
}
