// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
)

// Transaction - header fields common to every kind plus the kind
// specific body
//
// values are only created by a Factory and are not modified after
// Build; embedding into an aggregate produces a new Embedded value
type Transaction struct {
	Type      Type
	Network   chain.NetworkType
	Version   uint8
	Deadline  Deadline
	MaxFee    uint64
	Signature *account.Signature     // absent until signed
	Signer    *account.PublicAccount // absent until signed
	Info      *Info                  // only for transactions read from a node
	Group     Group
	Body      Body
}

// Body - kind specific fields
//
// the set of bodies is closed, each one accepts only the kinds that
// share its layout
type Body interface {
	validFor(t Type) bool
}

// Serializer - the binary codec
//
// passed explicitly to operations that need the wire form to avoid a
// dependency from the model on its encoding
type Serializer interface {
	Serialize(tx *Transaction) ([]byte, error)
	SerializeEmbedded(e Embedded) ([]byte, error)
	Size(tx *Transaction) (int, error)
	Deserialize(payload []byte) (*Transaction, error)
}

// Info - ledger metadata for a transaction fetched from a node
type Info struct {
	Height              uint64
	Index               uint32
	ID                  string
	Hash                *merkle.Digest
	MerkleComponentHash *merkle.Digest
	AggregateHash       *merkle.Digest
	AggregateID         string
}

// IsEmbedded - true for an inner transaction of an aggregate
func (i *Info) IsEmbedded() bool {
	return nil != i && (nil != i.AggregateHash || "" != i.AggregateID)
}

// Embedded - an inner transaction of an aggregate with its signer
type Embedded struct {
	Signer      account.PublicAccount
	Transaction *Transaction
}

// ToAggregate - wrap for inclusion in an aggregate
//
// the transaction is not modified, the embedded copy carries the signer
func (tx *Transaction) ToAggregate(signer account.PublicAccount) (Embedded, error) {
	if tx.Type.IsAggregate() {
		return Embedded{}, fault.ErrEmbeddedNotAllowed
	}
	inner := *tx
	inner.Body = copyBody(tx.Body)
	inner.Signature = nil
	inner.Signer = &signer
	return Embedded{
		Signer:      signer,
		Transaction: &inner,
	}, nil
}

// IsSigned - signature and signer are present
func (tx *Transaction) IsSigned() bool {
	return nil != tx.Signature && nil != tx.Signer
}

// Cosignature - an additional signature of an aggregate
type Cosignature struct {
	Version   uint64
	Signer    account.PublicAccount
	Signature account.Signature
}

// CosignatureSigned - a cosignature together with the hash of the
// aggregate it signs, ready to announce
type CosignatureSigned struct {
	ParentHash merkle.Digest
	Version    uint64
	Signer     account.PublicAccount
	Signature  account.Signature
}

// Cosignature - the part that is appended to the aggregate
func (c CosignatureSigned) Cosignature() Cosignature {
	return Cosignature{
		Version:   c.Version,
		Signer:    c.Signer,
		Signature: c.Signature,
	}
}

// Signed - result of a signing operation
type Signed struct {
	Signer  account.PublicAccount
	Payload []byte
	Hash    merkle.Digest
	Type    Type
	Network chain.NetworkType
}

// PayloadHex - upper case hex of the payload
func (s *Signed) PayloadHex() string {
	return strings.ToUpper(hex.EncodeToString(s.Payload))
}

// Group - how the network has seen a transaction
type Group uint8

// transaction groups
const (
	NoGroup = Group(iota)
	Unconfirmed
	Confirmed
	Partial
)

var groupNames = []string{"", "unconfirmed", "confirmed", "partial"}

// GroupFromName - parse a REST group name
func GroupFromName(s string) (Group, error) {
	for i, n := range groupNames {
		if n == s {
			return Group(i), nil
		}
	}
	return NoGroup, fault.ErrInvalidTransaction
}

func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return ""
}
