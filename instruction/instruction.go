// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
)

// AccountMeta - an account referenced by an instruction
type AccountMeta struct {
	Address    address.Address `json:"address"`
	IsWritable bool            `json:"isWritable"`
	IsSigner   bool            `json:"isSigner"`
}

// Writable - writable, not a signer
func Writable(a address.Address) AccountMeta {
	return AccountMeta{Address: a, IsWritable: true}
}

// Readonly - neither writable nor a signer
func Readonly(a address.Address) AccountMeta {
	return AccountMeta{Address: a}
}

// ReadonlySigner - a signer that is not written
func ReadonlySigner(a address.Address) AccountMeta {
	return AccountMeta{Address: a, IsSigner: true}
}

// WritableSigner - writable and a signer
func WritableSigner(a address.Address) AccountMeta {
	return AccountMeta{Address: a, IsWritable: true, IsSigner: true}
}

// Instruction - a call to another program
type Instruction struct {
	ProgramID address.Address `json:"programId"`
	Accounts  []AccountMeta   `json:"accounts"`
	Data      Packed          `json:"data"`
}

// Signer - the seeds of one program derived address that signs the
// invocation
type Signer [][]byte

// Invoker - the host side of a cross program invocation
//
// accounts are the infos backing instruction.Accounts, signers are
// the seed sets of program derived addresses signing for the caller
type Invoker interface {
	InvokeSigned(instruction *Instruction, accounts []*account.Info, signers []Signer) error
}

// Invoke - an invocation with no derived signers
func Invoke(invoker Invoker, instruction *Instruction, accounts []*account.Info) error {
	return invoker.InvokeSigned(instruction, accounts, nil)
}
