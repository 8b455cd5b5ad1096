// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// Success - the code returned to the host when no error occurred
const Success = uint64(0)

// Code - convert an error into the value returned to the host
//
// shape errors from the codecs are reported as invalid account data,
// anything unrecognised as an invalid argument
func Code(err error) uint64 {
	if nil == err {
		return Success
	}

	var pe ProgramError
	if errors.As(err, &pe) {
		return pe.Code()
	}
	var me MetadataError
	if errors.As(err, &me) {
		return me.Code()
	}

	var re RecordError
	var le LengthError
	if errors.As(err, &re) || errors.As(err, &le) {
		return InvalidAccountData.Code()
	}
	return InvalidArgument.Code()
}

// FromCode - convert a host value back into an error
//
// returns nil for Success
func FromCode(code uint64) error {
	switch {
	case Success == code:
		return nil
	case customZero == code:
		return MetadataError(0)
	case 0 == code&0xffffffff:
		return ProgramError(code >> builtinBitShift)
	case 0 == code>>builtinBitShift:
		return MetadataError(code)
	default:
		return InvalidArgument
	}
}
