// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pda

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
)

// Deriver - program derived address service
type Deriver interface {
	// highest bump that gives an address off the curve
	FindProgramAddress(seeds Seeds, programID address.Address) (address.Address, uint8, error)

	// seeds must already include the bump
	CreateProgramAddress(seeds Seeds, programID address.Address) (address.Address, error)
}

// SolanaDeriver - derivation by the solana-go library
type SolanaDeriver struct{}

// make sure it satisfies the interface
var _ Deriver = SolanaDeriver{}

// FindProgramAddress - search bumps from 255 down
func (SolanaDeriver) FindProgramAddress(seeds Seeds, programID address.Address) (address.Address, uint8, error) {
	if err := seeds.Validate(); nil != err {
		return address.Address{}, 0, err
	}
	key, bump, err := solana.FindProgramAddress(seeds, solana.PublicKey(programID))
	if nil != err {
		return address.Address{}, 0, fault.ErrNoDerivedAddress
	}
	return address.Address(key), bump, nil
}

// CreateProgramAddress - fails InvalidSeeds for an on curve result
func (SolanaDeriver) CreateProgramAddress(seeds Seeds, programID address.Address) (address.Address, error) {
	if err := seeds.Validate(); nil != err {
		return address.Address{}, err
	}
	key, err := solana.CreateProgramAddress(seeds, solana.PublicKey(programID))
	if nil != err {
		return address.Address{}, fault.InvalidSeeds
	}
	return address.Address(key), nil
}

// Verify - expected is the address derived from seeds with bump
//
// a mismatch is reported as mismatch, so callers can choose their own
// domain error
func Verify(deriver Deriver, expected address.Address, seeds Seeds, bump uint8, programID address.Address, mismatch error) error {
	derived, err := deriver.CreateProgramAddress(seeds.WithBump(bump), programID)
	if nil != err {
		return err
	}
	if derived != expected {
		return mismatch
	}
	return nil
}
