// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenmetadata/account"
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fixtures"
	"github.com/bitmark-inc/tokenmetadata/identity"
	"github.com/bitmark-inc/tokenmetadata/pda"
	"github.com/bitmark-inc/tokenmetadata/processor"
)

const programID = "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	_ = identity.Initialise(address.MustFromBase58(programID))

	rc := m.Run()

	_ = identity.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newProcessor(deriver pda.Deriver) *processor.Processor {
	return processor.New(logger.New(fixtures.LogCategory), deriver)
}

func info(a address.Address, owner address.Address, signer bool) *account.Info {
	i := account.NewInfo(a, owner, 0, nil)
	i.IsSigner = signer
	i.IsWritable = true
	return i
}
