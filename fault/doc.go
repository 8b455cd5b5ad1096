// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Three families are present:
//
//   - classed errors (ExistsError, InvalidError, LengthError,
//     NotFoundError, ProcessError, RecordError) used inside the
//     codecs and tools
//   - ProgramError, the host's builtin failure kinds
//   - MetadataError, the program's own numbered failure reasons
//
// Code maps any of these to the numeric value surfaced to the host.
package fault
