// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenmetadata/keypair"
)

// does not need configuration, so writes to the app's writer directly
func runGenerate(c *cli.Context) error {

	var k *keypair.KeyPair
	var err error

	if seed := c.String("seed"); "" != seed {
		k, err = keypair.FromHexSeed(seed)
	} else {
		k, err = keypair.New()
	}
	if nil != err {
		return err
	}

	return printJson(c.App.Writer, k.Raw())
}
