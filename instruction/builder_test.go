// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/fixtures"
	"github.com/bitmark-inc/tokenmetadata/instruction"
	"github.com/bitmark-inc/tokenmetadata/layout"
	"github.com/bitmark-inc/tokenmetadata/mocks"
)

func newInfo(a address.Address) *account.Info {
	return account.NewInfo(a, address.SystemProgramID, 0, nil)
}

func TestCreateInvoke(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	metadata := newInfo(fixtures.Stranger.Address)
	mint := newInfo(fixtures.Mint.Address)
	mintAuthority := newInfo(fixtures.Authority.Address)
	payer := newInfo(fixtures.Payer.Address)
	updateAuthority := newInfo(fixtures.NewAuthority.Address)

	create := instruction.Create{
		Metadata:             metadata,
		Mint:                 mint,
		MintAuthority:        mintAuthority,
		Payer:                payer,
		UpdateAuthority:      updateAuthority,
		Name:                 "name",
		Symbol:               "SYM",
		URI:                  "uri",
		SellerFeeBasisPoints: 250,
	}

	expected := &instruction.Instruction{
		ProgramID: address.MetadataProgramID,
		Accounts: []instruction.AccountMeta{
			{Address: fixtures.Stranger.Address, IsWritable: true},
			{Address: fixtures.Mint.Address},
			{Address: fixtures.Authority.Address, IsSigner: true},
			{Address: fixtures.Payer.Address, IsSigner: true},
			{Address: fixtures.NewAuthority.Address},
		},
		Data: instruction.CreateArgs{
			Name:                 "name",
			Symbol:               "SYM",
			URI:                  "uri",
			SellerFeeBasisPoints: 250,
		}.Pack(),
	}
	signers := []instruction.Signer{{[]byte("metadata"), {254}}}

	invoker := mocks.NewMockInvoker(ctl)
	invoker.EXPECT().InvokeSigned(
		expected,
		[]*account.Info{metadata, mint, mintAuthority, payer, updateAuthority},
		signers,
	).Return(nil).Times(1)

	err := create.InvokeSigned(invoker, signers)
	assert.Nil(t, err, "invoke")
}

func TestTransferMetadataInvoke(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	metadata := newInfo(fixtures.Stranger.Address)
	owner := newInfo(fixtures.Authority.Address)
	newOwner := newInfo(fixtures.NewAuthority.Address)

	transfer := instruction.TransferMetadata{
		Metadata: metadata,
		Owner:    owner,
		NewOwner: newOwner,
	}

	ix := transfer.Instruction()
	assert.Equal(t, address.MetadataProgramID, ix.ProgramID, "program")
	assert.Equal(t, instruction.Packed{1}, ix.Data, "data")
	assert.Equal(t, []instruction.AccountMeta{
		instruction.Writable(fixtures.Stranger.Address),
		instruction.ReadonlySigner(fixtures.Authority.Address),
		instruction.Readonly(fixtures.NewAuthority.Address),
	}, ix.Accounts, "accounts")

	invoker := mocks.NewMockInvoker(ctl)
	invoker.EXPECT().InvokeSigned(ix, []*account.Info{metadata, owner, newOwner}, nil).Return(fault.MissingRequiredSignature).Times(1)

	err := transfer.InvokeSigned(invoker, nil)
	assert.Equal(t, fault.MissingRequiredSignature, err, "error passed back")
}

func TestFixedLayoutBuilders(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	metadata := newInfo(fixtures.Stranger.Address)
	authority := newInfo(fixtures.Authority.Address)
	mint := newInfo(fixtures.Mint.Address)

	update := instruction.UpdateField{
		Metadata:        metadata,
		UpdateAuthority: authority,
		Field:           layout.Field{Kind: layout.FieldURI, Value: "u"},
	}
	remove := instruction.RemoveKey{
		Metadata:        metadata,
		UpdateAuthority: authority,
		Key:             "k",
	}
	initialise := instruction.InitializeTokenMetadata{
		Metadata:        metadata,
		UpdateAuthority: authority,
		Mint:            mint,
		MintAuthority:   authority,
		Name:            "n",
	}

	invoker := mocks.NewMockInvoker(ctl)
	gomock.InOrder(
		invoker.EXPECT().InvokeSigned(update.Instruction(), []*account.Info{metadata, authority}, gomock.Nil()).Return(nil),
		invoker.EXPECT().InvokeSigned(remove.Instruction(), []*account.Info{metadata, authority}, gomock.Nil()).Return(nil),
		invoker.EXPECT().InvokeSigned(initialise.Instruction(), []*account.Info{metadata, authority, mint, authority}, gomock.Nil()).Return(nil),
	)

	assert.Nil(t, update.InvokeSigned(invoker, nil), "update field")
	assert.Nil(t, remove.InvokeSigned(invoker, nil), "remove key")
	assert.Nil(t, initialise.InvokeSigned(invoker, nil), "initialise")

	assert.Equal(t, []instruction.AccountMeta{
		instruction.Writable(fixtures.Stranger.Address),
		instruction.Readonly(fixtures.Authority.Address),
		instruction.Readonly(fixtures.Mint.Address),
		instruction.ReadonlySigner(fixtures.Authority.Address),
	}, initialise.Instruction().Accounts, "initialise accounts")
}

func TestInitializeMint2(t *testing.T) {
	mint := newInfo(fixtures.Mint.Address)
	freeze := fixtures.NewAuthority.Address

	withFreeze := instruction.InitializeMint2{
		Mint:            mint,
		Decimals:        6,
		MintAuthority:   fixtures.Authority.Address,
		FreezeAuthority: &freeze,
	}
	ix := withFreeze.Instruction()
	require.Equal(t, instruction.InitializeMint2Length, len(ix.Data), "length")
	assert.Equal(t, 67, len(ix.Data), "67 bytes")
	assert.Equal(t, address.TokenProgramID, ix.ProgramID, "token program")
	assert.Equal(t, byte(20), ix.Data[0], "tag")
	assert.Equal(t, byte(6), ix.Data[1], "decimals")
	assert.Equal(t, fixtures.Authority.Address[:], []byte(ix.Data[2:34]), "mint authority")
	assert.Equal(t, byte(1), ix.Data[34], "freeze present")
	assert.Equal(t, freeze[:], []byte(ix.Data[35:67]), "freeze authority")
	assert.Equal(t, []instruction.AccountMeta{instruction.Writable(fixtures.Mint.Address)}, ix.Accounts, "accounts")

	withoutFreeze := withFreeze
	withoutFreeze.FreezeAuthority = nil
	ix = withoutFreeze.Instruction()
	require.Equal(t, 67, len(ix.Data), "length without freeze")
	assert.Equal(t, byte(0), ix.Data[34], "freeze absent")
	assert.Equal(t, make([]byte, 32), []byte(ix.Data[35:67]), "zero filled")
}

func TestUpdateNonceAccount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	nonce := newInfo(fixtures.Payer.Address)
	update := instruction.UpdateNonceAccount{Account: nonce}

	ix := update.Instruction()
	assert.Equal(t, address.SystemProgramID, ix.ProgramID, "system program")
	assert.Equal(t, instruction.Packed{12, 0, 0, 0}, ix.Data, "data")

	invoker := mocks.NewMockInvoker(ctl)
	invoker.EXPECT().InvokeSigned(ix, []*account.Info{nonce}, gomock.Nil()).Return(nil)

	err := instruction.Invoke(invoker, ix, []*account.Info{nonce})
	assert.Nil(t, err, "invoke")
}

func TestAccountMetaConstructors(t *testing.T) {
	a := fixtures.Payer.Address
	assert.Equal(t, instruction.AccountMeta{Address: a, IsWritable: true}, instruction.Writable(a), "writable")
	assert.Equal(t, instruction.AccountMeta{Address: a}, instruction.Readonly(a), "readonly")
	assert.Equal(t, instruction.AccountMeta{Address: a, IsSigner: true}, instruction.ReadonlySigner(a), "readonly signer")
	assert.Equal(t, instruction.AccountMeta{Address: a, IsWritable: true, IsSigner: true}, instruction.WritableSigner(a), "writable signer")
}
