// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

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
	"github.com/bitmark-inc/tokenmetadata/metadatarecord"
	"github.com/bitmark-inc/tokenmetadata/mocks"
	"github.com/bitmark-inc/tokenmetadata/pda"
)

type createAccounts struct {
	metadata        *account.Info
	mint            *account.Info
	mintAuthority   *account.Info
	payer           *account.Info
	updateAuthority *account.Info
}

func newCreateAccounts(metadata address.Address) createAccounts {
	return createAccounts{
		metadata:        info(metadata, address.SystemProgramID, false),
		mint:            info(fixtures.Mint.Address, address.TokenProgramID, false),
		mintAuthority:   info(fixtures.Payer.Address, address.SystemProgramID, true),
		payer:           info(fixtures.Payer.Address, address.SystemProgramID, true),
		updateAuthority: info(fixtures.Authority.Address, address.SystemProgramID, false),
	}
}

func (c createAccounts) list() []*account.Info {
	return []*account.Info{c.metadata, c.mint, c.mintAuthority, c.payer, c.updateAuthority}
}

func (c createAccounts) instruction(name string, fee uint16) *instruction.Instruction {
	return instruction.Create{
		Metadata:             c.metadata,
		Mint:                 c.mint,
		MintAuthority:        c.mintAuthority,
		Payer:                c.payer,
		UpdateAuthority:      c.updateAuthority,
		Name:                 name,
		Symbol:               "SYM",
		URI:                  "https://example.com/a.json",
		SellerFeeBasisPoints: fee,
	}.Instruction()
}

// the mock derives the metadata address then the edition address
func expectDerivation(deriver *mocks.MockDeriver, metadata address.Address) {
	program := address.MustFromBase58(programID)
	gomock.InOrder(
		deriver.EXPECT().
			FindProgramAddress(pda.MetadataSeeds(program, fixtures.Mint.Address), program).
			Return(metadata, uint8(254), nil),
		deriver.EXPECT().
			FindProgramAddress(pda.EditionSeeds(program, fixtures.Mint.Address), program).
			Return(fixtures.NewAuthority.Address, uint8(253), nil),
	)
}

func TestCreate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	program := address.MustFromBase58(programID)
	deriver := mocks.NewMockDeriver(ctl)
	expectDerivation(deriver, fixtures.Stranger.Address)

	accounts := newCreateAccounts(fixtures.Stranger.Address)
	ix := accounts.instruction("Bitmark", 500)

	err := newProcessor(deriver).Process(ix.ProgramID, accounts.list(), ix.Data)
	require.Nil(t, err, "create")

	assert.Equal(t, program, accounts.metadata.Owner, "assigned to program")

	m, err := metadatarecord.LoadMetadata(accounts.metadata)
	require.Nil(t, err, "load")
	assert.Equal(t, metadatarecord.KeyMetadataV1, m.Key, "key")
	assert.Equal(t, fixtures.Authority.Address, m.UpdateAuthority, "update authority")
	assert.Equal(t, fixtures.Mint.Address, m.Mint, "mint")
	assert.Equal(t, "Bitmark", m.Data.Name, "name")
	assert.Equal(t, "SYM", m.Data.Symbol, "symbol")
	assert.Equal(t, uint16(500), m.Data.SellerFeeBasisPoints, "fee")
	assert.True(t, m.IsMutable, "mutable")
	require.NotNil(t, m.EditionNonce, "edition nonce")
	assert.Equal(t, uint8(253), *m.EditionNonce, "edition nonce value")
	require.NotNil(t, m.TokenStandard, "token standard")
	assert.Equal(t, metadatarecord.NonFungible, *m.TokenStandard, "token standard value")
	assert.Equal(t, m.SerializedLength(), accounts.metadata.DataLen(), "exact account size")
}

func TestCreateErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	program := address.MustFromBase58(programID)
	deriver := mocks.NewMockDeriver(ctl)
	p := newProcessor(deriver)

	// checked before any derivation
	accounts := newCreateAccounts(fixtures.Stranger.Address)
	accounts.payer.IsSigner = false
	ix := accounts.instruction("n", 0)
	err := p.Process(ix.ProgramID, accounts.list(), ix.Data)
	assert.Equal(t, fault.MissingRequiredSignature, err, "payer not signer")

	accounts = newCreateAccounts(fixtures.Stranger.Address)
	accounts.metadata = account.NewInfo(fixtures.Stranger.Address, program, 0, []byte{byte(metadatarecord.KeyMetadataV1), 0, 0})
	ix = accounts.instruction("n", 0)
	err = p.Process(ix.ProgramID, accounts.list(), ix.Data)
	assert.Equal(t, fault.AlreadyInitialized, err, "already initialised")

	accounts = newCreateAccounts(fixtures.Stranger.Address)
	accounts.metadata.Owner = address.TokenProgramID
	err = p.Process(ix.ProgramID, accounts.list(), ix.Data)
	assert.Equal(t, fault.IncorrectOwner, err, "foreign account")

	err = p.Process(ix.ProgramID, accounts.list()[:4], ix.Data)
	assert.Equal(t, fault.NotEnoughAccountKeys, err, "four accounts")

	err = p.Process(address.TokenProgramID, accounts.list(), ix.Data)
	assert.Equal(t, fault.IncorrectProgramId, err, "wrong program")

	// derived address does not match the metadata account
	deriver.EXPECT().
		FindProgramAddress(gomock.Any(), program).
		Return(fixtures.Payer.Address, uint8(255), nil).
		Times(1)
	accounts = newCreateAccounts(fixtures.Stranger.Address)
	err = p.Process(ix.ProgramID, accounts.list(), ix.Data)
	assert.Equal(t, fault.InvalidMetadataKey, err, "wrong derived address")

	expectDerivation(deriver, fixtures.Stranger.Address)
	accounts = newCreateAccounts(fixtures.Stranger.Address)
	ix = accounts.instruction("n", 10001)
	err = p.Process(ix.ProgramID, accounts.list(), ix.Data)
	assert.Equal(t, fault.InvalidBasisPoints, err, "basis points")
	assert.True(t, accounts.metadata.DataIsEmpty(), "nothing written")
}

func TestCreateWithSolanaDeriver(t *testing.T) {
	program := address.MustFromBase58(programID)
	deriver := pda.SolanaDeriver{}

	metadata, _, err := deriver.FindProgramAddress(pda.MetadataSeeds(program, fixtures.Mint.Address), program)
	require.Nil(t, err, "derive")

	accounts := newCreateAccounts(metadata)
	ix := accounts.instruction("derived", 0)
	err = newProcessor(deriver).Process(ix.ProgramID, accounts.list(), ix.Data)
	require.Nil(t, err, "create")

	m, err := metadatarecord.LoadMetadata(accounts.metadata)
	require.Nil(t, err, "load")
	assert.Equal(t, "derived", m.Data.Name, "name")
}

func TestTransfer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	deriver := mocks.NewMockDeriver(ctl)
	expectDerivation(deriver, fixtures.Stranger.Address)
	p := newProcessor(deriver)

	accounts := newCreateAccounts(fixtures.Stranger.Address)
	ix := accounts.instruction("n", 0)
	require.Nil(t, p.Process(ix.ProgramID, accounts.list(), ix.Data), "create")

	owner := info(fixtures.Authority.Address, address.SystemProgramID, false)
	newOwner := info(fixtures.NewAuthority.Address, address.SystemProgramID, false)
	transfer := instruction.TransferMetadata{
		Metadata: accounts.metadata,
		Owner:    owner,
		NewOwner: newOwner,
	}.Instruction()
	list := []*account.Info{accounts.metadata, owner, newOwner}

	err := p.Process(transfer.ProgramID, list, transfer.Data)
	assert.Equal(t, fault.UpdateAuthorityIsNotSigner, err, "not signed")

	stranger := info(fixtures.Stranger.Address, address.SystemProgramID, true)
	err = p.Process(transfer.ProgramID, []*account.Info{accounts.metadata, stranger, newOwner}, transfer.Data)
	assert.Equal(t, fault.UpdateAuthorityIncorrect, err, "wrong authority")

	owner.IsSigner = true
	err = p.Process(transfer.ProgramID, list, transfer.Data)
	require.Nil(t, err, "transfer")

	m, err := metadatarecord.LoadMetadata(accounts.metadata)
	require.Nil(t, err, "load")
	assert.Equal(t, fixtures.NewAuthority.Address, m.UpdateAuthority, "new authority")
	assert.Equal(t, "n", m.Data.Name, "data kept")

	// the old authority no longer controls the record
	err = p.Process(transfer.ProgramID, list, transfer.Data)
	assert.Equal(t, fault.UpdateAuthorityIncorrect, err, "old authority")
}

func TestUnknownInstruction(t *testing.T) {
	program := address.MustFromBase58(programID)
	p := newProcessor(pda.SolanaDeriver{})

	err := p.Process(program, nil, instruction.Packed{0x09})
	assert.Equal(t, fault.InvalidInstructionData, err, "unknown opcode")

	err = p.Process(program, nil, nil)
	assert.Equal(t, fault.InvalidInstructionData, err, "empty data")

	err = p.Process(program, nil, instruction.TransferMetadataArgs{}.Pack())
	assert.Equal(t, fault.NotEnoughAccountKeys, err, "no accounts")
}
