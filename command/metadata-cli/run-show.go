// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenmetadata/storage"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := checkMetadataAccount(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", a)
	}

	info, err := storage.GetAccount(a)
	if nil != err {
		return err
	}

	d, err := describe(info)
	if nil != err {
		return err
	}
	return printJson(m.w, d)
}
