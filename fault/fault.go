// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound           = NotFoundError("account not found")
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrBufferLengthMismatch      = LengthError("buffer length mismatch")
	ErrCannotOpenDatabase        = ProcessError("cannot open database")
	ErrDatabaseIsNotSet          = ProcessError("database is not set")
	ErrEmptyKey                  = InvalidError("empty key")
	ErrIncompatibleDatabase      = ProcessError("incompatible database version")
	ErrInvalidAccountRecord      = RecordError("invalid account record")
	ErrInvalidAddressLength      = LengthError("invalid address length")
	ErrInvalidBase58             = InvalidError("invalid base58 string")
	ErrInvalidBoolean            = RecordError("invalid boolean value")
	ErrInvalidConfiguration      = InvalidError("configuration must return a table")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidData               = RecordError("invalid data")
	ErrInvalidDelegateRole       = RecordError("invalid delegate role")
	ErrInvalidHexString          = InvalidError("invalid hex string")
	ErrInvalidKey                = RecordError("invalid account key")
	ErrInvalidLoggerChannel      = ProcessError("invalid logger channel")
	ErrInvalidPresence           = RecordError("invalid option presence byte")
	ErrInvalidProgramID          = InvalidError("invalid program id")
	ErrInvalidProgrammableConfig = RecordError("invalid programmable config version")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidTokenStandard      = RecordError("invalid token standard")
	ErrInvalidTokenState         = RecordError("invalid token state")
	ErrInvalidUseMethod          = RecordError("invalid use method")
	ErrInvalidUTF8String         = RecordError("invalid UTF-8 string")
	ErrNoDerivedAddress          = NotFoundError("unable to find a viable program address")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrTransactionInUse          = ProcessError("transaction already in use")
	ErrTruncatedData             = RecordError("truncated data")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
