// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/instruction"
	"github.com/bitmark-inc/tokenmetadata/metadatarecord"
	"github.com/bitmark-inc/tokenmetadata/pda"
)

// create a variable length metadata record at the mint's derived
// address
func (p *Processor) create(programID address.Address, accounts []*account.Info, args instruction.CreateArgs) error {
	if err := need(accounts, 5); nil != err {
		return err
	}
	metadataInfo := accounts[0]
	mint := accounts[1]
	mintAuthority := accounts[2]
	payer := accounts[3]
	updateAuthority := accounts[4]

	if err := account.AssertSigner(mintAuthority); nil != err {
		return err
	}
	if err := account.AssertSigner(payer); nil != err {
		return err
	}

	// only a fresh account, or one already handed to this program but
	// not yet written, can be created
	if !metadataInfo.IsOwnedBy(address.SystemProgramID) && !metadataInfo.IsOwnedBy(programID) {
		return fault.IncorrectOwner
	}
	if !metadataInfo.DataIsEmpty() && !metadatarecord.IsCorrectAccountType(metadataInfo.DataUnchecked(), metadatarecord.KeyUninitialized, 0) {
		return fault.AlreadyInitialized
	}

	seeds := pda.MetadataSeeds(programID, mint.Key)
	expected, _, err := p.Deriver.FindProgramAddress(seeds, programID)
	if nil != err {
		return err
	}
	if expected != metadataInfo.Key {
		return fault.InvalidMetadataKey
	}

	_, editionBump, err := p.Deriver.FindProgramAddress(pda.EditionSeeds(programID, mint.Key), programID)
	if nil != err {
		return err
	}

	data := metadatarecord.NewAssetData(metadatarecord.NonFungible, args.Name, args.Symbol, args.URI)
	data.SellerFeeBasisPoints = args.SellerFeeBasisPoints
	if err := data.Validate(); nil != err {
		return err
	}

	tokenStandard := data.TokenStandard
	m := metadatarecord.Metadata{
		Key:             metadatarecord.KeyMetadataV1,
		UpdateAuthority: updateAuthority.Key,
		Mint:            mint.Key,
		Data:            data,
		IsMutable:       true,
		EditionNonce:    &editionBump,
		TokenStandard:   &tokenStandard,
	}

	if err := metadataInfo.Realloc(m.SerializedLength()); nil != err {
		return err
	}
	metadataInfo.Owner = programID
	if err := m.Save(metadataInfo); nil != err {
		return err
	}

	p.Log.Infof("created: %s  mint: %s  update authority: %s", metadataInfo.Key, mint.Key, updateAuthority.Key)
	return nil
}

// hand the update authority to a new account
func (p *Processor) transfer(accounts []*account.Info) error {
	if err := need(accounts, 3); nil != err {
		return err
	}
	metadataInfo := accounts[0]
	owner := accounts[1]
	newOwner := accounts[2]

	m, err := metadatarecord.LoadMetadata(metadataInfo)
	if nil != err {
		return err
	}
	if m.UpdateAuthority != owner.Key {
		return fault.UpdateAuthorityIncorrect
	}
	if !owner.IsSigner {
		return fault.UpdateAuthorityIsNotSigner
	}

	m.UpdateAuthority = newOwner.Key
	if err := m.Save(metadataInfo); nil != err {
		return err
	}

	p.Log.Infof("transferred: %s  to: %s", metadataInfo.Key, newOwner.Key)
	return nil
}
