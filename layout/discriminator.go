// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"encoding/hex"

	"github.com/bitmark-inc/tokenmetadata/fault"
)

// DiscriminatorLength - bytes in an interface discriminator
const DiscriminatorLength = 8

// Discriminator - identifies an account interface
type Discriminator [DiscriminatorLength]byte

// known discriminators
var (
	UninitializedDiscriminator = Discriminator{}
	TokenMetadataDiscriminator = Discriminator{112, 132, 90, 90, 11, 88, 157, 87}
)

// DiscriminatorFromBytes - fails unless exactly eight bytes
func DiscriminatorFromBytes(buffer []byte) (Discriminator, error) {
	d := Discriminator{}
	if DiscriminatorLength != len(buffer) {
		return d, fault.InvalidAccountData
	}
	copy(d[:], buffer)
	return d, nil
}

// String - hex text for use by the fmt package (for %s)
func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}
