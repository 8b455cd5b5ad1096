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
	"github.com/bitmark-inc/tokenmetadata/layout"
)

type updateResult struct {
	Account address.Address `json:"account"`
	Field   layout.Field    `json:"field"`
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenMetadata, err := checkAddress(c, "account")
	if nil != err {
		return err
	}
	authority, err := checkAddress(c, "authority")
	if nil != err {
		return err
	}
	fieldName, err := checkString(c, "field")
	if nil != err {
		return err
	}
	kind, err := layout.FieldKindFromString(fieldName)
	if nil != err {
		return fmt.Errorf("field: %q is not one of name, symbol, uri or key", fieldName)
	}

	field := layout.Field{
		Kind:  kind,
		Value: c.String("value"),
	}
	if layout.FieldKey == kind {
		field.Key, err = checkString(c, "key")
		if nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", tokenMetadata)
		fmt.Fprintf(m.e, "field: %s\n", kind)
		fmt.Fprintf(m.e, "value: %q\n", field.Value)
	}

	err = withLedger(m, []address.Address{authority}, func(l *ledger) error {
		infos, err := l.Accounts(tokenMetadata, authority)
		if nil != err {
			return err
		}
		update := instruction.UpdateField{
			Metadata:        infos[0],
			UpdateAuthority: infos[1],
			Field:           field,
		}
		return update.InvokeSigned(l, nil)
	})
	if nil != err {
		return err
	}

	return printJson(m.w, updateResult{
		Account: tokenMetadata,
		Field:   field,
	})
}
