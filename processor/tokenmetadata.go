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
	"github.com/bitmark-inc/tokenmetadata/layout"
)

// first write of a fixed layout record
func (p *Processor) initialize(programID address.Address, accounts []*account.Info, args instruction.InitializeTokenMetadataArgs) error {
	if err := need(accounts, 4); nil != err {
		return err
	}
	metadataInfo := accounts[0]
	updateAuthority := accounts[1]
	mint := accounts[2]
	mintAuthority := accounts[3]

	if err := account.AssertSigner(mintAuthority); nil != err {
		return err
	}
	if !metadataInfo.IsOwnedBy(programID) {
		return fault.InvalidAccountOwner
	}

	if metadataInfo.DataIsEmpty() {
		if err := metadataInfo.Realloc(layout.TokenMetadataLength); nil != err {
			return err
		}
	}

	view, err := layout.LoadMut(metadataInfo)
	if nil != err {
		return err
	}
	defer view.Release()

	if !view.Mint().IsZero() {
		return fault.AlreadyInitialized
	}

	view.Reset()
	view.SetUpdateAuthority(updateAuthority.Key)
	view.SetMint(mint.Key)
	view.SetName(args.Name)
	view.SetSymbol(args.Symbol)
	view.SetURI(args.URI)

	p.Log.Infof("initialised: %s  mint: %s", metadataInfo.Key, mint.Key)
	return nil
}

// the view of a fixed layout record whose update authority signed
//
// the caller must release the view
func authorised(metadataInfo *account.Info, updateAuthority *account.Info) (*layout.TokenMetadataMut, error) {
	view, err := layout.LoadMut(metadataInfo)
	if nil != err {
		return nil, err
	}
	switch {
	case !view.HasUpdateAuthority():
		err = fault.Immutable
	case view.UpdateAuthority() != updateAuthority.Key:
		err = fault.IncorrectAuthority
	case !updateAuthority.IsSigner:
		err = fault.MissingRequiredSignature
	}
	if nil != err {
		view.Release()
		return nil, err
	}
	return view, nil
}

func (p *Processor) updateField(accounts []*account.Info, args instruction.UpdateFieldArgs) error {
	if err := need(accounts, 2); nil != err {
		return err
	}

	view, err := authorised(accounts[0], accounts[1])
	if nil != err {
		return err
	}
	defer view.Release()

	if err := view.Update(args.Field); nil != err {
		return err
	}

	p.Log.Debugf("updated: %s  field: %s", accounts[0].Key, args.Field.Kind)
	return nil
}

func (p *Processor) removeKey(accounts []*account.Info, args instruction.RemoveKeyArgs) error {
	if err := need(accounts, 2); nil != err {
		return err
	}

	view, err := authorised(accounts[0], accounts[1])
	if nil != err {
		return err
	}
	defer view.Release()

	if !view.RemoveKey(args.Key) && !args.Idempotent {
		return fault.InvalidArgument
	}

	p.Log.Debugf("removed: %s  key: %q", accounts[0].Key, args.Key)
	return nil
}
