// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenmetadata/fault"
)

func TestProgramErrorCode(t *testing.T) {
	items := []struct {
		err  fault.ProgramError
		code uint64
	}{
		{fault.InvalidArgument, 2 << 32},
		{fault.InvalidInstructionData, 3 << 32},
		{fault.InvalidAccountData, 4 << 32},
		{fault.AccountDataTooSmall, 5 << 32},
		{fault.AccountBorrowFailed, 12 << 32},
		{fault.MaxSeedLengthExceeded, 13 << 32},
		{fault.InvalidAccountOwner, 23 << 32},
		{fault.IncorrectAuthority, 26 << 32},
	}

	for i, item := range items {
		assert.Equal(t, item.code, item.err.Code(), "%d: code for: %s", i, item.err)
		assert.Equal(t, item.code, fault.Code(item.err), "%d: fault.Code for: %s", i, item.err)
		assert.Equal(t, item.err, fault.FromCode(item.code), "%d: reverse of: %x", i, item.code)
	}
}

func TestMetadataErrorCode(t *testing.T) {
	items := []struct {
		err  fault.MetadataError
		code uint64
	}{
		{fault.InstructionUnpackError, 1 << 32},
		{fault.InstructionPackError, 1},
		{fault.AlreadyInitialized, 3},
		{fault.UpdateAuthorityIncorrect, 7},
		{fault.UpdateAuthorityIsNotSigner, 8},
		{fault.InvalidBasisPoints, 41},
		{fault.NumericalOverflowError, 51},
		{fault.IncorrectOwner, 57},
		{fault.DataTypeMismatch, 63},
		{fault.ConditionsForClosingNotMet, 200},
	}

	for i, item := range items {
		assert.True(t, item.err.IsValid(), "%d: valid: %d", i, item.err)
		assert.Equal(t, item.code, fault.Code(item.err), "%d: code for: %s", i, item.err)
		assert.Equal(t, item.err, fault.FromCode(item.code), "%d: reverse of: %x", i, item.code)
	}

	assert.False(t, fault.MetadataError(201).IsValid(), "out of range is valid")
	assert.Equal(t, "metadata error: 201", fault.MetadataError(201).Error(), "out of range text")
	assert.Equal(t, "basis points cannot be more than 10000", fault.InvalidBasisPoints.Error(), "message")
}

func TestCodeOfClassedErrors(t *testing.T) {
	assert.Equal(t, fault.Success, fault.Code(nil), "nil error")
	assert.Nil(t, fault.FromCode(fault.Success), "success code")

	assert.Equal(t, fault.InvalidAccountData.Code(), fault.Code(fault.ErrInvalidData), "record error")
	assert.Equal(t, fault.InvalidAccountData.Code(), fault.Code(fault.ErrInvalidAddressLength), "length error")
	assert.Equal(t, fault.InvalidArgument.Code(), fault.Code(fault.ErrEmptyKey), "invalid error")

	wrapped := fmt.Errorf("load: %w", fault.IncorrectOwner)
	assert.Equal(t, uint64(57), fault.Code(wrapped), "wrapped metadata error")

	wrapped = fmt.Errorf("borrow: %w", fault.AccountBorrowFailed)
	assert.Equal(t, fault.AccountBorrowFailed.Code(), fault.Code(wrapped), "wrapped program error")

	assert.Equal(t, fault.InvalidArgument, fault.FromCode(0x0000000100000001), "mixed bits")
}
