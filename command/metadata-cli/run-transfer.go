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

type transferResult struct {
	Metadata        address.Address `json:"metadata"`
	UpdateAuthority address.Address `json:"updateAuthority"`
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	metadataAddress, err := checkMetadataAccount(c)
	if nil != err {
		return err
	}
	owner, err := checkAddress(c, "owner")
	if nil != err {
		return err
	}
	receiver, err := checkAddress(c, "receiver")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "metadata: %s\n", metadataAddress)
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	err = withLedger(m, []address.Address{owner}, func(l *ledger) error {
		infos, err := l.Accounts(metadataAddress, owner, receiver)
		if nil != err {
			return err
		}
		transfer := instruction.TransferMetadata{
			Metadata: infos[0],
			Owner:    infos[1],
			NewOwner: infos[2],
		}
		return transfer.InvokeSigned(l, nil)
	})
	if nil != err {
		return err
	}

	return printJson(m.w, transferResult{
		Metadata:        metadataAddress,
		UpdateAuthority: receiver,
	})
}
