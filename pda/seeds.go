// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pda

import (
	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/metadatarecord"
)

// host limits on derivation seeds
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

// seed strings
const (
	metadataPrefix      = "metadata"
	editionSuffix       = "edition"
	tokenRecordSeed     = "token_record"
	useAuthoritySeed    = "user"
	collectionAuthority = "collection_authority"
)

// Seeds - ordered derivation seeds, not including the bump
type Seeds [][]byte

// WithBump - a copy with the bump seed appended, as needed to sign
func (s Seeds) WithBump(bump uint8) Seeds {
	seeds := make(Seeds, 0, len(s)+1)
	seeds = append(seeds, s...)
	return append(seeds, []byte{bump})
}

// Validate - within the host limits
func (s Seeds) Validate() error {
	if len(s) > MaxSeeds {
		return fault.MaxSeedLengthExceeded
	}
	for _, seed := range s {
		if len(seed) > MaxSeedLength {
			return fault.MaxSeedLengthExceeded
		}
	}
	return nil
}

// all metadata program addresses start the same way
func prefixed(programID address.Address, mint address.Address, rest ...[]byte) Seeds {
	seeds := Seeds{
		[]byte(metadataPrefix),
		programID.Bytes(),
		mint.Bytes(),
	}
	return append(seeds, rest...)
}

// MetadataSeeds - ["metadata", program, mint]
func MetadataSeeds(programID address.Address, mint address.Address) Seeds {
	return prefixed(programID, mint)
}

// EditionSeeds - ["metadata", program, mint, "edition"]
func EditionSeeds(programID address.Address, mint address.Address) Seeds {
	return prefixed(programID, mint, []byte(editionSuffix))
}

// MetadataDelegateSeeds - ["metadata", program, mint, role, update authority, delegate]
func MetadataDelegateSeeds(programID address.Address, mint address.Address, role metadatarecord.MetadataDelegateRole, updateAuthority address.Address, delegate address.Address) Seeds {
	return prefixed(programID, mint, []byte(role.String()), updateAuthority.Bytes(), delegate.Bytes())
}

// HolderDelegateSeeds - ["metadata", program, mint, role, owner, delegate]
func HolderDelegateSeeds(programID address.Address, mint address.Address, role metadatarecord.HolderDelegateRole, owner address.Address, delegate address.Address) Seeds {
	return prefixed(programID, mint, []byte(role.String()), owner.Bytes(), delegate.Bytes())
}

// TokenRecordSeeds - ["metadata", program, mint, "token_record", token account]
func TokenRecordSeeds(programID address.Address, mint address.Address, token address.Address) Seeds {
	return prefixed(programID, mint, []byte(tokenRecordSeed), token.Bytes())
}

// UseAuthoritySeeds - ["metadata", program, mint, "user", use authority]
func UseAuthoritySeeds(programID address.Address, mint address.Address, useAuthority address.Address) Seeds {
	return prefixed(programID, mint, []byte(useAuthoritySeed), useAuthority.Bytes())
}

// CollectionAuthoritySeeds - ["metadata", program, mint, "collection_authority", authority]
func CollectionAuthoritySeeds(programID address.Address, mint address.Address, authority address.Address) Seeds {
	return prefixed(programID, mint, []byte(collectionAuthority), authority.Bytes())
}
