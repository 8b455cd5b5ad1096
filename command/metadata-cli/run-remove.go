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

type removeResult struct {
	Account address.Address `json:"account"`
	Key     string          `json:"key"`
}

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenMetadata, err := checkAddress(c, "account")
	if nil != err {
		return err
	}
	authority, err := checkAddress(c, "authority")
	if nil != err {
		return err
	}
	key, err := checkString(c, "key")
	if nil != err {
		return err
	}
	idempotent := c.Bool("idempotent")

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", tokenMetadata)
		fmt.Fprintf(m.e, "key: %q  idempotent: %t\n", key, idempotent)
	}

	err = withLedger(m, []address.Address{authority}, func(l *ledger) error {
		infos, err := l.Accounts(tokenMetadata, authority)
		if nil != err {
			return err
		}
		remove := instruction.RemoveKey{
			Metadata:        infos[0],
			UpdateAuthority: infos[1],
			Key:             key,
			Idempotent:      idempotent,
		}
		return remove.InvokeSigned(l, nil)
	})
	if nil != err {
		return err
	}

	return printJson(m.w, removeResult{
		Account: tokenMetadata,
		Key:     key,
	})
}
