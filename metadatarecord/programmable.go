// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadatarecord

import (
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/wire"
)

// ProgrammableConfigVersion - which variant of ProgrammableConfig
type ProgrammableConfigVersion uint8

// programmable config variants
const (
	ProgrammableConfigV1 ProgrammableConfigVersion = iota
	programmableConfigLimit
)

// ProgrammableConfig - authorization rules of a programmable asset
type ProgrammableConfig struct {
	Version ProgrammableConfigVersion `json:"version"`
	RuleSet *address.Address          `json:"ruleSet"`
}

// NewProgrammableConfigV1 - ruleSet may be nil
func NewProgrammableConfigV1(ruleSet *address.Address) ProgrammableConfig {
	return ProgrammableConfig{
		Version: ProgrammableConfigV1,
		RuleSet: ruleSet,
	}
}

// Encode - version byte then the optional rule set
func (p ProgrammableConfig) Encode(w *wire.Writer) {
	w.PutU8(uint8(p.Version))
	w.PutOptionalAddress(p.RuleSet)
}

func decodeProgrammableConfig(r *wire.Reader) (ProgrammableConfig, error) {
	p := ProgrammableConfig{}
	version, err := r.U8()
	if nil != err {
		return p, err
	}
	if ProgrammableConfigVersion(version) >= programmableConfigLimit {
		return p, fault.ErrInvalidProgrammableConfig
	}
	p.Version = ProgrammableConfigVersion(version)
	if p.RuleSet, err = r.OptionalAddress(); nil != err {
		return p, err
	}
	return p, nil
}
