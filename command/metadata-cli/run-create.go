// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/instruction"
	"github.com/bitmark-inc/tokenmetadata/pda"
)

type createResult struct {
	Metadata        address.Address `json:"metadata"`
	Mint            address.Address `json:"mint"`
	UpdateAuthority address.Address `json:"updateAuthority"`
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkAddress(c, "mint")
	if nil != err {
		return err
	}
	mintAuthority, err := checkAddress(c, "mint-authority")
	if nil != err {
		return err
	}
	payer, err := checkOptionalAddress(c, "payer", mintAuthority)
	if nil != err {
		return err
	}
	updateAuthority, err := checkOptionalAddress(c, "update-authority", mintAuthority)
	if nil != err {
		return err
	}
	name, err := checkString(c, "name")
	if nil != err {
		return err
	}

	fee := c.Int("fee")
	if fee < 0 || fee > math.MaxUint16 {
		return fmt.Errorf("invalid fee: %d", fee)
	}

	programID := m.config.programID
	metadataAddress, _, err := pda.SolanaDeriver{}.FindProgramAddress(pda.MetadataSeeds(programID, mint), programID)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "metadata: %s\n", metadataAddress)
		fmt.Fprintf(m.e, "mint: %s\n", mint)
		fmt.Fprintf(m.e, "name: %q\n", name)
		fmt.Fprintf(m.e, "fee: %d\n", fee)
	}

	err = withLedger(m, []address.Address{mintAuthority, payer}, func(l *ledger) error {
		infos, err := l.Accounts(metadataAddress, mint, mintAuthority, payer, updateAuthority)
		if nil != err {
			return err
		}
		create := instruction.Create{
			Metadata:             infos[0],
			Mint:                 infos[1],
			MintAuthority:        infos[2],
			Payer:                infos[3],
			UpdateAuthority:      infos[4],
			Name:                 name,
			Symbol:               c.String("symbol"),
			URI:                  c.String("uri"),
			SellerFeeBasisPoints: uint16(fee),
		}
		return create.InvokeSigned(l, nil)
	})
	if nil != err {
		return err
	}

	return printJson(m.w, createResult{
		Metadata:        metadataAddress,
		Mint:            mint,
		UpdateAuthority: updateAuthority,
	})
}
