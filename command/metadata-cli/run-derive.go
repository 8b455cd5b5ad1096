// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/pda"
)

type derived struct {
	Address address.Address `json:"address"`
	Bump    uint8           `json:"bump"`
}

type deriveResult struct {
	Mint        address.Address `json:"mint"`
	Metadata    derived         `json:"metadata"`
	Edition     derived         `json:"edition"`
	TokenRecord *derived        `json:"tokenRecord,omitempty"`
}

func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkAddress(c, "mint")
	if nil != err {
		return err
	}

	result, err := deriveAddresses(pda.SolanaDeriver{}, m.config.programID, mint, c.String("token"))
	if nil != err {
		return err
	}
	return printJson(m.w, result)
}

func deriveAddresses(deriver pda.Deriver, programID address.Address, mint address.Address, token string) (*deriveResult, error) {
	find := func(seeds pda.Seeds) (derived, error) {
		a, bump, err := deriver.FindProgramAddress(seeds, programID)
		return derived{Address: a, Bump: bump}, err
	}

	result := &deriveResult{
		Mint: mint,
	}

	var err error
	result.Metadata, err = find(pda.MetadataSeeds(programID, mint))
	if nil != err {
		return nil, err
	}
	result.Edition, err = find(pda.EditionSeeds(programID, mint))
	if nil != err {
		return nil, err
	}

	if "" != token {
		tokenAddress, err := address.FromBase58(token)
		if nil != err {
			return nil, err
		}
		record, err := find(pda.TokenRecordSeeds(programID, mint, tokenAddress))
		if nil != err {
			return nil, err
		}
		result.TokenRecord = &record
	}
	return result, nil
}
