// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fixtures"
	"github.com/bitmark-inc/tokenmetadata/identity"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	_ = identity.Initialise(address.MetadataProgramID)

	rc := m.Run()

	_ = identity.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}
