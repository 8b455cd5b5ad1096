// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/layout"
)

// Create - create a variable length metadata record
//
// accounts:
//   0. [writable] metadata
//   1. [] mint
//   2. [signer] mint authority
//   3. [signer] payer
//   4. [] update authority
type Create struct {
	Metadata             *account.Info
	Mint                 *account.Info
	MintAuthority        *account.Info
	Payer                *account.Info
	UpdateAuthority      *account.Info
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
}

// Instruction - the instruction without invoking it
func (c Create) Instruction() *Instruction {
	return &Instruction{
		ProgramID: address.MetadataProgramID,
		Accounts: []AccountMeta{
			Writable(c.Metadata.Key),
			Readonly(c.Mint.Key),
			ReadonlySigner(c.MintAuthority.Key),
			ReadonlySigner(c.Payer.Key),
			Readonly(c.UpdateAuthority.Key),
		},
		Data: CreateArgs{
			Name:                 c.Name,
			Symbol:               c.Symbol,
			URI:                  c.URI,
			SellerFeeBasisPoints: c.SellerFeeBasisPoints,
		}.Pack(),
	}
}

// InvokeSigned - pass the instruction to the host
func (c Create) InvokeSigned(invoker Invoker, signers []Signer) error {
	accounts := []*account.Info{c.Metadata, c.Mint, c.MintAuthority, c.Payer, c.UpdateAuthority}
	return invoker.InvokeSigned(c.Instruction(), accounts, signers)
}

// TransferMetadata - hand the update authority to a new owner
//
// accounts:
//   0. [writable] metadata
//   1. [signer] current update authority
//   2. [] new update authority
type TransferMetadata struct {
	Metadata *account.Info
	Owner    *account.Info
	NewOwner *account.Info
}

// Instruction - the instruction without invoking it
func (t TransferMetadata) Instruction() *Instruction {
	return &Instruction{
		ProgramID: address.MetadataProgramID,
		Accounts: []AccountMeta{
			Writable(t.Metadata.Key),
			ReadonlySigner(t.Owner.Key),
			Readonly(t.NewOwner.Key),
		},
		Data: TransferMetadataArgs{}.Pack(),
	}
}

// InvokeSigned - pass the instruction to the host
func (t TransferMetadata) InvokeSigned(invoker Invoker, signers []Signer) error {
	accounts := []*account.Info{t.Metadata, t.Owner, t.NewOwner}
	return invoker.InvokeSigned(t.Instruction(), accounts, signers)
}

// UpdateField - change one field of a fixed layout record
//
// accounts:
//   0. [writable] metadata
//   1. [signer] update authority
type UpdateField struct {
	Metadata        *account.Info
	UpdateAuthority *account.Info
	Field           layout.Field
}

// Instruction - the instruction without invoking it
func (u UpdateField) Instruction() *Instruction {
	return &Instruction{
		ProgramID: address.MetadataProgramID,
		Accounts: []AccountMeta{
			Writable(u.Metadata.Key),
			ReadonlySigner(u.UpdateAuthority.Key),
		},
		Data: UpdateFieldArgs{Field: u.Field}.Pack(),
	}
}

// InvokeSigned - pass the instruction to the host
func (u UpdateField) InvokeSigned(invoker Invoker, signers []Signer) error {
	accounts := []*account.Info{u.Metadata, u.UpdateAuthority}
	return invoker.InvokeSigned(u.Instruction(), accounts, signers)
}

// RemoveKey - drop one key from a fixed layout record
//
// accounts as UpdateField
type RemoveKey struct {
	Metadata        *account.Info
	UpdateAuthority *account.Info
	Key             string
	Idempotent      bool
}

// Instruction - the instruction without invoking it
func (r RemoveKey) Instruction() *Instruction {
	return &Instruction{
		ProgramID: address.MetadataProgramID,
		Accounts: []AccountMeta{
			Writable(r.Metadata.Key),
			ReadonlySigner(r.UpdateAuthority.Key),
		},
		Data: RemoveKeyArgs{Idempotent: r.Idempotent, Key: r.Key}.Pack(),
	}
}

// InvokeSigned - pass the instruction to the host
func (r RemoveKey) InvokeSigned(invoker Invoker, signers []Signer) error {
	accounts := []*account.Info{r.Metadata, r.UpdateAuthority}
	return invoker.InvokeSigned(r.Instruction(), accounts, signers)
}

// InitializeTokenMetadata - first write of a fixed layout record
//
// accounts:
//   0. [writable] metadata
//   1. [] update authority
//   2. [] mint
//   3. [signer] mint authority
type InitializeTokenMetadata struct {
	Metadata        *account.Info
	UpdateAuthority *account.Info
	Mint            *account.Info
	MintAuthority   *account.Info
	Name            string
	Symbol          string
	URI             string
}

// Instruction - the instruction without invoking it
func (i InitializeTokenMetadata) Instruction() *Instruction {
	return &Instruction{
		ProgramID: address.MetadataProgramID,
		Accounts: []AccountMeta{
			Writable(i.Metadata.Key),
			Readonly(i.UpdateAuthority.Key),
			Readonly(i.Mint.Key),
			ReadonlySigner(i.MintAuthority.Key),
		},
		Data: InitializeTokenMetadataArgs{
			Name:   i.Name,
			Symbol: i.Symbol,
			URI:    i.URI,
		}.Pack(),
	}
}

// InvokeSigned - pass the instruction to the host
func (i InitializeTokenMetadata) InvokeSigned(invoker Invoker, signers []Signer) error {
	accounts := []*account.Info{i.Metadata, i.UpdateAuthority, i.Mint, i.MintAuthority}
	return invoker.InvokeSigned(i.Instruction(), accounts, signers)
}
