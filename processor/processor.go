// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/identity"
	"github.com/bitmark-inc/tokenmetadata/instruction"
	"github.com/bitmark-inc/tokenmetadata/pda"
)

// Processor - executes metadata program instructions against
// account infos supplied by the host
type Processor struct {
	Log     *logger.L
	Deriver pda.Deriver
}

// New - a processor using deriver for address checks
func New(log *logger.L, deriver pda.Deriver) *Processor {
	return &Processor{
		Log:     log,
		Deriver: deriver,
	}
}

// Process - decode data and run the instruction
//
// programID must be the initialised program identity
func (p *Processor) Process(programID address.Address, accounts []*account.Info, data instruction.Packed) error {
	if !identity.IsInitialised() || identity.ProgramID() != programID {
		return fault.IncorrectProgramId
	}

	payload, err := instruction.Unpack(data)
	if nil != err {
		p.Log.Warnf("unpack: %x  error: %s", data, err)
		return err
	}

	p.Log.Debugf("instruction: %s  accounts: %d", payload.Opcode(), len(accounts))

	switch args := payload.(type) {
	case instruction.CreateArgs:
		err = p.create(programID, accounts, args)
	case instruction.TransferMetadataArgs:
		err = p.transfer(accounts)
	case instruction.InitializeTokenMetadataArgs:
		err = p.initialize(programID, accounts, args)
	case instruction.UpdateFieldArgs:
		err = p.updateField(accounts, args)
	case instruction.RemoveKeyArgs:
		err = p.removeKey(accounts, args)
	default:
		err = fault.InvalidInstructionData
	}

	if nil != err {
		p.Log.Infof("instruction: %s  failed: %s", payload.Opcode(), err)
	}
	return err
}

// the first n accounts, in instruction order
func need(accounts []*account.Info, n int) error {
	if len(accounts) < n {
		return fault.NotEnoughAccountKeys
	}
	for _, a := range accounts[:n] {
		if nil == a {
			return fault.NotEnoughAccountKeys
		}
	}
	return nil
}
