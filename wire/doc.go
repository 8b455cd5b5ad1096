// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - primitive field encoding for account records
//
// All integers are little endian of fixed width, strings are a u32
// byte count followed by UTF-8 bytes, addresses are 32 raw bytes and
// booleans are a single 0 or 1 byte.  An optional field is a presence
// byte (0 absent, 1 present) followed by the field when present.
//
// Encoding and measuring share one routine: a record implements
// Encoder once and Size runs it against a counting Writer, so a
// serialized length can never disagree with the serialized bytes.
//
// Every Reader step is bounds checked and reports a fault.RecordError
// instead of panicking.
package wire
