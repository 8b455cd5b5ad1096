// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/wire"
)

// instruction tags of other programs
const (
	initializeMint2Tag    = 20 // token program
	updateNonceAccountTag = 12 // system program
)

// InitializeMint2Length - tag, decimals, mint authority, optional freeze
// authority
const InitializeMint2Length = 1 + 1 + address.Length + 1 + address.Length

// InitializeMint2 - token program: initialise a mint
//
// accounts:
//   0. [writable] mint
type InitializeMint2 struct {
	Mint            *account.Info
	Decimals        uint8
	MintAuthority   address.Address
	FreezeAuthority *address.Address
}

// the freeze authority slot is always present, zero filled when absent
func (m InitializeMint2) data() Packed {
	w := wire.NewWriter(InitializeMint2Length)
	w.PutU8(initializeMint2Tag)
	w.PutU8(m.Decimals)
	w.PutAddress(m.MintAuthority)
	w.PutOptionalAddress(m.FreezeAuthority)
	if nil == m.FreezeAuthority {
		w.PutAddress(address.Address{})
	}
	return w.Bytes()
}

// Instruction - the instruction without invoking it
func (m InitializeMint2) Instruction() *Instruction {
	return &Instruction{
		ProgramID: address.TokenProgramID,
		Accounts:  []AccountMeta{Writable(m.Mint.Key)},
		Data:      m.data(),
	}
}

// InvokeSigned - pass the instruction to the host
func (m InitializeMint2) InvokeSigned(invoker Invoker, signers []Signer) error {
	return invoker.InvokeSigned(m.Instruction(), []*account.Info{m.Mint}, signers)
}

// UpdateNonceAccount - system program: upgrade a legacy nonce account
//
// accounts:
//   0. [writable] nonce account
type UpdateNonceAccount struct {
	Account *account.Info
}

// Instruction - the instruction without invoking it
//
// system program instructions carry a u32 tag
func (u UpdateNonceAccount) Instruction() *Instruction {
	w := wire.NewWriter(4)
	w.PutU32(updateNonceAccountTag)
	return &Instruction{
		ProgramID: address.SystemProgramID,
		Accounts:  []AccountMeta{Writable(u.Account.Key)},
		Data:      w.Bytes(),
	}
}

// InvokeSigned - pass the instruction to the host
func (u UpdateNonceAccount) InvokeSigned(invoker Invoker, signers []Signer) error {
	return invoker.InvokeSigned(u.Instruction(), []*account.Info{u.Account}, signers)
}
