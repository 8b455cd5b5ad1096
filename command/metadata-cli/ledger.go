// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/instruction"
	"github.com/bitmark-inc/tokenmetadata/pda"
	"github.com/bitmark-inc/tokenmetadata/processor"
	"github.com/bitmark-inc/tokenmetadata/storage"
)

// ledger - runs metadata instructions against the stored accounts
//
// one ledger holds one storage transaction: accounts are loaded on
// first use, shared by every instruction and written back by Commit
type ledger struct {
	log       *logger.L
	programID address.Address
	processor *processor.Processor
	deriver   pda.Deriver
	trx       storage.Transaction
	accounts  map[address.Address]*account.Info
	writable  map[address.Address]struct{}
	signers   map[address.Address]struct{}
}

// start a ledger transaction, signers are the addresses the operator
// vouches for
func newLedger(log *logger.L, programID address.Address, deriver pda.Deriver, signers ...address.Address) (*ledger, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	l := &ledger{
		log:       log,
		programID: programID,
		processor: processor.New(log, deriver),
		deriver:   deriver,
		trx:       trx,
		accounts:  make(map[address.Address]*account.Info),
		writable:  make(map[address.Address]struct{}),
		signers:   make(map[address.Address]struct{}),
	}
	for _, s := range signers {
		l.signers[s] = struct{}{}
	}
	return l, nil
}

// Account - the stored account, or a fresh empty system account
func (l *ledger) Account(a address.Address) (*account.Info, error) {
	if info, ok := l.accounts[a]; ok {
		return info, nil
	}

	info, err := storage.GetAccount(a)
	if fault.ErrAccountNotFound == err {
		info = account.NewInfo(a, address.SystemProgramID, 0, nil)
	} else if nil != err {
		return nil, err
	}

	_, info.IsSigner = l.signers[a]
	l.accounts[a] = info
	return info, nil
}

// Accounts - Account for each address, in order
func (l *ledger) Accounts(addresses ...address.Address) ([]*account.Info, error) {
	infos := make([]*account.Info, len(addresses))
	for i, a := range addresses {
		info, err := l.Account(a)
		if nil != err {
			return nil, err
		}
		infos[i] = info
	}
	return infos, nil
}

// Assign - hand an empty system account to the program
func (l *ledger) Assign(a address.Address) (*account.Info, error) {
	info, err := l.Account(a)
	if nil != err {
		return nil, err
	}
	if info.IsOwnedBy(l.programID) {
		return info, nil
	}
	if !info.IsOwnedBy(address.SystemProgramID) || !info.DataIsEmpty() {
		return nil, fault.IncorrectOwner
	}
	info.Owner = l.programID
	l.writable[a] = struct{}{}
	return info, nil
}

// InvokeSigned - run one instruction
//
// each signer seed set must derive one of the instruction's accounts
// under the program, that account then counts as signed
func (l *ledger) InvokeSigned(ix *instruction.Instruction, accounts []*account.Info, signers []instruction.Signer) error {
	if len(accounts) != len(ix.Accounts) {
		return fault.NotEnoughAccountKeys
	}

	for i, meta := range ix.Accounts {
		if accounts[i].Key != meta.Address {
			return fault.InvalidArgument
		}
	}

	for _, seeds := range signers {
		derived, err := l.deriver.CreateProgramAddress(pda.Seeds(seeds), l.programID)
		if nil != err {
			return err
		}
		for _, info := range accounts {
			if derived == info.Key {
				info.IsSigner = true
			}
		}
	}

	for i, meta := range ix.Accounts {
		if _, ok := l.accounts[meta.Address]; !ok {
			l.accounts[meta.Address] = accounts[i]
		}
		accounts[i].IsWritable = meta.IsWritable
		if meta.IsWritable {
			l.writable[meta.Address] = struct{}{}
		}
	}

	err := l.processor.Process(ix.ProgramID, accounts, ix.Data)
	if nil != err {
		l.log.Warnf("instruction to: %s  error: %s", ix.ProgramID, err)
	}
	return err
}

// Commit - write back every account an instruction could modify
func (l *ledger) Commit() error {
	for a := range l.writable {
		storage.PutAccount(l.trx, l.accounts[a])
	}
	l.log.Debugf("commit: %d accounts", len(l.writable))
	return l.trx.Commit()
}

// Abort - discard all changes
func (l *ledger) Abort() {
	l.trx.Abort()
}
