// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/pda"
	"github.com/bitmark-inc/tokenmetadata/storage"
)

// a required base58 address flag
func checkAddress(c *cli.Context, name string) (address.Address, error) {
	s := c.String(name)
	if "" == s {
		return address.Address{}, fmt.Errorf("%s is required", name)
	}
	a, err := address.FromBase58(s)
	if nil != err {
		return address.Address{}, fmt.Errorf("%s: %q is not an address: %s", name, s, err)
	}
	return a, nil
}

// an optional base58 address flag, fallback when absent
func checkOptionalAddress(c *cli.Context, name string, fallback address.Address) (address.Address, error) {
	if "" == c.String(name) {
		return fallback, nil
	}
	return checkAddress(c, name)
}

// select one of --account or --mint, a mint is looked up in the index
func checkMetadataAccount(c *cli.Context) (address.Address, error) {
	hasAccount := "" != c.String("account")
	hasMint := "" != c.String("mint")

	switch {
	case hasAccount && hasMint:
		return address.Address{}, fmt.Errorf("only one of account or mint is allowed")
	case hasAccount:
		return checkAddress(c, "account")
	case hasMint:
		mint, err := checkAddress(c, "mint")
		if nil != err {
			return address.Address{}, err
		}
		a, err := storage.MetadataForMint(mint)
		if nil != err {
			return address.Address{}, fmt.Errorf("mint: %s has no metadata: %s", mint, err)
		}
		return a, nil
	default:
		return address.Address{}, fmt.Errorf("account or mint is required")
	}
}

// a string that must be present
func checkString(c *cli.Context, name string) (string, error) {
	s := c.String(name)
	if "" == s {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}

// the ledger for a write command, the caller must Commit or Abort
func openLedger(m *metadata, signers ...address.Address) (*ledger, error) {
	return newLedger(m.log, m.config.programID, pda.SolanaDeriver{}, signers...)
}

// run f in a ledger, commit only if it succeeds
func withLedger(m *metadata, signers []address.Address, f func(l *ledger) error) error {
	l, err := openLedger(m, signers...)
	if nil != err {
		return err
	}
	if err := f(l); nil != err {
		l.Abort()
		return err
	}
	return l.Commit()
}
