// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// ProgramError - builtin failure kinds understood by the host
//
// the host receives kind << 32, the lower 32 bits are reserved for
// custom program errors
type ProgramError uint32

// builtin failure kinds, values are fixed by the host
const (
	InvalidArgument                        ProgramError = 2
	InvalidInstructionData                 ProgramError = 3
	InvalidAccountData                     ProgramError = 4
	AccountDataTooSmall                    ProgramError = 5
	InsufficientFunds                      ProgramError = 6
	IncorrectProgramId                     ProgramError = 7
	MissingRequiredSignature               ProgramError = 8
	AccountAlreadyInitialized              ProgramError = 9
	UninitializedAccount                   ProgramError = 10
	NotEnoughAccountKeys                   ProgramError = 11
	AccountBorrowFailed                    ProgramError = 12
	MaxSeedLengthExceeded                  ProgramError = 13
	InvalidSeeds                           ProgramError = 14
	BorshIoError                           ProgramError = 15
	AccountNotRentExempt                   ProgramError = 16
	UnsupportedSysvar                      ProgramError = 17
	IllegalOwner                           ProgramError = 18
	MaxAccountsDataAllocationsExceeded     ProgramError = 19
	InvalidRealloc                         ProgramError = 20
	MaxInstructionTraceLengthExceeded      ProgramError = 21
	BuiltinProgramsMustConsumeComputeUnits ProgramError = 22
	InvalidAccountOwner                    ProgramError = 23
	ArithmeticOverflow                     ProgramError = 24
	Immutable                              ProgramError = 25
	IncorrectAuthority                     ProgramError = 26
)

const (
	builtinBitShift = 32

	// a custom error with value zero cannot be told apart from
	// success so the host reserves builtin kind 1 for it
	customZero = uint64(1) << builtinBitShift
)

var programErrorText = map[ProgramError]string{
	InvalidArgument:                        "the arguments provided to a program instruction were invalid",
	InvalidInstructionData:                 "an instruction's data contents was invalid",
	InvalidAccountData:                     "an account's data contents was invalid",
	AccountDataTooSmall:                    "an account's data was too small",
	InsufficientFunds:                      "an account's balance was too small to complete the instruction",
	IncorrectProgramId:                     "the account did not have the expected program id",
	MissingRequiredSignature:               "a signature was required but not found",
	AccountAlreadyInitialized:              "an initialize instruction was sent to an account that has already been initialized",
	UninitializedAccount:                   "an attempt to operate on an account that hasn't been initialized",
	NotEnoughAccountKeys:                   "the instruction expected additional account keys",
	AccountBorrowFailed:                    "failed to borrow a reference to account data, already borrowed",
	MaxSeedLengthExceeded:                  "length of the seed is too long for address generation",
	InvalidSeeds:                           "provided seeds do not result in a valid address",
	BorshIoError:                           "IO error",
	AccountNotRentExempt:                   "an account does not have enough lamports to be rent-exempt",
	UnsupportedSysvar:                      "unsupported sysvar",
	IllegalOwner:                           "provided owner is not allowed",
	MaxAccountsDataAllocationsExceeded:     "accounts data allocations exceeded the maximum allowed per transaction",
	InvalidRealloc:                         "account data reallocation was invalid",
	MaxInstructionTraceLengthExceeded:      "instruction trace length exceeded the maximum allowed per transaction",
	BuiltinProgramsMustConsumeComputeUnits: "builtin programs must consume compute units",
	InvalidAccountOwner:                    "invalid account owner",
	ArithmeticOverflow:                     "program arithmetic overflowed",
	Immutable:                              "account is immutable",
	IncorrectAuthority:                     "incorrect authority provided",
}

// Error - the error interface method
func (e ProgramError) Error() string {
	if s, ok := programErrorText[e]; ok {
		return s
	}
	return fmt.Sprintf("program error: %d", uint32(e))
}

// Code - the value the host sees for this error
func (e ProgramError) Code() uint64 {
	return uint64(e) << builtinBitShift
}

// IsErrProgram - determine if an error is a builtin failure kind
func IsErrProgram(e error) bool { _, ok := e.(ProgramError); return ok }
