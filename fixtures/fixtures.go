// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test helpers
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenmetadata/keypair"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic signing keys for test accounts
var (
	Payer        Keypair
	Authority    Keypair
	NewAuthority Keypair
	Mint         Keypair
	Stranger     Keypair
)

// Keypair - a signing key and the address derived from it
type Keypair = keypair.KeyPair

func init() {
	Payer = MakeKeypair(1)
	Authority = MakeKeypair(2)
	NewAuthority = MakeKeypair(3)
	Mint = MakeKeypair(4)
	Stranger = MakeKeypair(5)
}

// MakeKeypair - the same seed byte always yields the same keys
func MakeKeypair(seed byte) Keypair {
	k, err := keypair.FromSeed(bytes.Repeat([]byte{seed}, keypair.SeedLength))
	if nil != err {
		panic(fmt.Sprintf("fixtures: key generation: %s", err))
	}
	return *k
}

// SetupTestLogger - log to a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
