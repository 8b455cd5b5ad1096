// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - ed25519 signing keys whose public key is an address
package keypair

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
)

// SeedLength - bytes of secret seed
const SeedLength = ed25519.SeedSize

var (
	ErrKeyLength = fault.InvalidError("key length is invalid")
)

// KeyPair - structure to hold public and private keys and the seed
// that was used to generate them
type KeyPair struct {
	Seed       []byte
	Address    address.Address
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string          `json:"seed"`
	Address    address.Address `json:"address"`
	PrivateKey string          `json:"private_key"`
}

// NewSeed - create a new seed from secure random data
func NewSeed() ([]byte, error) {
	return readSeed(rand.Reader)
}

func readSeed(r io.Reader) ([]byte, error) {
	seed := make([]byte, SeedLength)
	if _, err := io.ReadFull(r, seed); nil != err {
		return nil, err
	}
	return seed, nil
}

// New - a key pair from secure random data
func New() (*KeyPair, error) {
	seed, err := NewSeed()
	if nil != err {
		return nil, err
	}
	return FromSeed(seed)
}

// FromSeed - the same seed always gives the same keys
func FromSeed(seed []byte) (*KeyPair, error) {
	if SeedLength != len(seed) {
		return nil, ErrKeyLength
	}

	privateKey := ed25519.NewKeyFromSeed(seed)
	a, err := address.FromBytes(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return nil, err
	}

	s := make([]byte, SeedLength)
	copy(s, seed)

	return &KeyPair{
		Seed:       s,
		Address:    a,
		PrivateKey: privateKey,
	}, nil
}

// FromHexSeed - FromSeed for a hexadecimal seed
func FromHexSeed(seed string) (*KeyPair, error) {
	b, err := hex.DecodeString(seed)
	if nil != err {
		return nil, fault.ErrInvalidHexString
	}
	return FromSeed(b)
}

// Raw - text form
func (k *KeyPair) Raw() *RawKeyPair {
	return &RawKeyPair{
		Seed:       hex.EncodeToString(k.Seed),
		Address:    k.Address,
		PrivateKey: hex.EncodeToString(k.PrivateKey),
	}
}

// Sign - ed25519 signature of message
func (k *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(k.PrivateKey, message)
}

// Verify - check a signature by the holder of a
func Verify(a address.Address, message []byte, signature []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(a.Bytes()), message, signature)
}
