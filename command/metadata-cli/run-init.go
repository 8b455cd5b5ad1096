// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/instruction"
)

type initResult struct {
	Account         address.Address `json:"account"`
	Mint            address.Address `json:"mint"`
	UpdateAuthority address.Address `json:"updateAuthority"`
}

func runInit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenMetadata, err := checkAddress(c, "account")
	if nil != err {
		return err
	}
	mint, err := checkAddress(c, "mint")
	if nil != err {
		return err
	}
	mintAuthority, err := checkAddress(c, "mint-authority")
	if nil != err {
		return err
	}
	updateAuthority, err := checkOptionalAddress(c, "update-authority", mintAuthority)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", tokenMetadata)
		fmt.Fprintf(m.e, "mint: %s\n", mint)
		fmt.Fprintf(m.e, "update authority: %s\n", updateAuthority)
	}

	err = withLedger(m, []address.Address{mintAuthority}, func(l *ledger) error {

		// a new account is handed to the program before its first write
		metadataInfo, err := l.Assign(tokenMetadata)
		if nil != err {
			return err
		}
		infos, err := l.Accounts(updateAuthority, mint, mintAuthority)
		if nil != err {
			return err
		}
		initialize := instruction.InitializeTokenMetadata{
			Metadata:        metadataInfo,
			UpdateAuthority: infos[0],
			Mint:            infos[1],
			MintAuthority:   infos[2],
			Name:            c.String("name"),
			Symbol:          c.String("symbol"),
			URI:             c.String("uri"),
		}
		return initialize.InvokeSigned(l, nil)
	})
	if nil != err {
		return err
	}

	return printJson(m.w, initResult{
		Account:         tokenMetadata,
		Mint:            mint,
		UpdateAuthority: updateAuthority,
	})
}
