// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/layout"
	"github.com/bitmark-inc/tokenmetadata/wire"
)

// Opcode - first byte of every metadata program instruction
type Opcode uint8

// enumerate the metadata program instructions
const (
	CreateOpcode                  = Opcode(iota) // variable length metadata record
	TransferMetadataOpcode        = Opcode(iota) // change update authority
	UpdateFieldOpcode             = Opcode(iota) // fixed layout: set one field
	RemoveKeyOpcode               = Opcode(iota) // fixed layout: drop one key
	InitializeTokenMetadataOpcode = Opcode(iota) // fixed layout: first write

	// this item must be last
	InvalidOpcode = Opcode(iota)
)

var opcodeNames = [...]string{
	CreateOpcode:                  "create",
	TransferMetadataOpcode:        "transfer",
	UpdateFieldOpcode:             "update-field",
	RemoveKeyOpcode:               "remove-key",
	InitializeTokenMetadataOpcode: "initialize",
}

func (op Opcode) String() string {
	if op < InvalidOpcode {
		return opcodeNames[op]
	}
	return "invalid"
}

// Packed - packed instruction data
type Packed []byte

// Payload - decoded instruction data
type Payload interface {
	Opcode() Opcode
	Pack() Packed
}

// CreateArgs - opcode 0
type CreateArgs struct {
	Name                 string `json:"name"`
	Symbol               string `json:"symbol"`
	URI                  string `json:"uri"`
	SellerFeeBasisPoints uint16 `json:"sellerFeeBasisPoints"`
}

// TransferMetadataArgs - opcode 1, no arguments
type TransferMetadataArgs struct{}

// UpdateFieldArgs - opcode 2
type UpdateFieldArgs struct {
	Field layout.Field `json:"field"`
}

// RemoveKeyArgs - opcode 3
//
// an idempotent removal of an absent key succeeds
type RemoveKeyArgs struct {
	Idempotent bool   `json:"idempotent"`
	Key        string `json:"key"`
}

// InitializeTokenMetadataArgs - opcode 4, followed on the wire by the
// fixed layout discriminator
type InitializeTokenMetadataArgs struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	URI    string `json:"uri"`
}

// Opcode - the instruction tag
func (CreateArgs) Opcode() Opcode                  { return CreateOpcode }
func (TransferMetadataArgs) Opcode() Opcode        { return TransferMetadataOpcode }
func (UpdateFieldArgs) Opcode() Opcode             { return UpdateFieldOpcode }
func (RemoveKeyArgs) Opcode() Opcode               { return RemoveKeyOpcode }
func (InitializeTokenMetadataArgs) Opcode() Opcode { return InitializeTokenMetadataOpcode }

// Encode - name, symbol and uri as length prefixed strings then the fee
func (a CreateArgs) Encode(w *wire.Writer) {
	w.PutU8(uint8(CreateOpcode))
	w.PutString(a.Name)
	w.PutString(a.Symbol)
	w.PutString(a.URI)
	w.PutU16(a.SellerFeeBasisPoints)
}

// Encode - the opcode alone
func (a TransferMetadataArgs) Encode(w *wire.Writer) {
	w.PutU8(uint8(TransferMetadataOpcode))
}

// Encode - kind, key for FieldKey only, then the value
func (a UpdateFieldArgs) Encode(w *wire.Writer) {
	w.PutU8(uint8(UpdateFieldOpcode))
	w.PutU8(uint8(a.Field.Kind))
	if layout.FieldKey == a.Field.Kind {
		w.PutString(a.Field.Key)
	}
	w.PutString(a.Field.Value)
}

// Encode - idempotent flag then the key
func (a RemoveKeyArgs) Encode(w *wire.Writer) {
	w.PutU8(uint8(RemoveKeyOpcode))
	w.PutBool(a.Idempotent)
	w.PutString(a.Key)
}

// Encode - discriminator then the three strings
func (a InitializeTokenMetadataArgs) Encode(w *wire.Writer) {
	w.PutU8(uint8(InitializeTokenMetadataOpcode))
	w.PutRaw(layout.TokenMetadataDiscriminator[:])
	w.PutString(a.Name)
	w.PutString(a.Symbol)
	w.PutString(a.URI)
}

// Pack - encode with the opcode prefix
func (a CreateArgs) Pack() Packed                  { return wire.Marshal(a) }
func (a TransferMetadataArgs) Pack() Packed        { return wire.Marshal(a) }
func (a UpdateFieldArgs) Pack() Packed             { return wire.Marshal(a) }
func (a RemoveKeyArgs) Pack() Packed               { return wire.Marshal(a) }
func (a InitializeTokenMetadataArgs) Pack() Packed { return wire.Marshal(a) }

// Unpack - decode metadata program instruction data
//
// every failure, including trailing bytes, is InvalidInstructionData
func Unpack(data Packed) (Payload, error) {
	r := wire.NewReader(data)
	b, err := r.U8()
	if nil != err {
		return nil, fault.InvalidInstructionData
	}

	var payload Payload
	switch Opcode(b) {
	case CreateOpcode:
		payload, err = unpackCreate(r)
	case TransferMetadataOpcode:
		payload = TransferMetadataArgs{}
	case UpdateFieldOpcode:
		payload, err = unpackUpdateField(r)
	case RemoveKeyOpcode:
		payload, err = unpackRemoveKey(r)
	case InitializeTokenMetadataOpcode:
		payload, err = unpackInitialize(r)
	default:
		return nil, fault.InvalidInstructionData
	}

	if nil != err || 0 != r.Remaining() {
		return nil, fault.InvalidInstructionData
	}
	return payload, nil
}

func unpackCreate(r *wire.Reader) (Payload, error) {
	a := CreateArgs{}
	var err error
	if a.Name, err = r.Text(); nil != err {
		return nil, err
	}
	if a.Symbol, err = r.Text(); nil != err {
		return nil, err
	}
	if a.URI, err = r.Text(); nil != err {
		return nil, err
	}
	if a.SellerFeeBasisPoints, err = r.U16(); nil != err {
		return nil, err
	}
	return a, nil
}

func unpackUpdateField(r *wire.Reader) (Payload, error) {
	a := UpdateFieldArgs{}
	kind, err := r.U8()
	if nil != err {
		return nil, err
	}
	a.Field.Kind = layout.FieldKind(kind)
	if !a.Field.Kind.IsValid() {
		return nil, fault.InvalidInstructionData
	}
	if layout.FieldKey == a.Field.Kind {
		if a.Field.Key, err = r.Text(); nil != err {
			return nil, err
		}
	}
	if a.Field.Value, err = r.Text(); nil != err {
		return nil, err
	}
	return a, nil
}

func unpackRemoveKey(r *wire.Reader) (Payload, error) {
	a := RemoveKeyArgs{}
	var err error
	if a.Idempotent, err = r.Bool(); nil != err {
		return nil, err
	}
	if a.Key, err = r.Text(); nil != err {
		return nil, err
	}
	return a, nil
}

func unpackInitialize(r *wire.Reader) (Payload, error) {
	raw, err := r.Raw(len(layout.TokenMetadataDiscriminator))
	if nil != err {
		return nil, err
	}
	d, err := layout.DiscriminatorFromBytes(raw)
	if nil != err || layout.TokenMetadataDiscriminator != d {
		return nil, fault.InvalidInstructionData
	}

	a := InitializeTokenMetadataArgs{}
	if a.Name, err = r.Text(); nil != err {
		return nil, err
	}
	if a.Symbol, err = r.Text(); nil != err {
		return nil, err
	}
	if a.URI, err = r.Text(); nil != err {
		return nil, err
	}
	return a, nil
}
