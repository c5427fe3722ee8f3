// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
)

// CosignatureSize - version(8) + signer(32) + signature(64)
const CosignatureSize = 8 + account.PublicKeyLength + account.SignatureLength

// Factory - builder for a single transaction
//
// kind specific fields are validated by the New...Factory functions;
// the chaining methods only set header fields and Build never fails
type Factory struct {
	tx              Transaction
	epochAdjustment time.Duration
	deadlineSet     bool
}

// common part of every constructor
func newFactory(t Type, network chain.NetworkType, body Body) (*Factory, error) {
	if !network.Valid() {
		return nil, fault.ErrInvalidNetworkType
	}
	if !ValidBody(t, body) {
		return nil, fault.ErrInvalidTransaction
	}
	f := &Factory{
		tx: Transaction{
			Type:    t,
			Network: network,
			Version: t.CurrentVersion(),
			MaxFee:  0,
			Body:    body,
		},
		epochAdjustment: DefaultEpochAdjustment,
	}
	f.tx.Deadline = DefaultDeadline(f.epochAdjustment)
	return f, nil
}

// Type - kind being built
func (f *Factory) Type() Type {
	return f.tx.Type
}

// Network - network being built for
func (f *Factory) Network() chain.NetworkType {
	return f.tx.Network
}

// Body - kind specific fields
func (f *Factory) Body() Body {
	return f.tx.Body
}

// EpochAdjustment - network epoch used for the default deadline
func (f *Factory) EpochAdjustment(epoch time.Duration) *Factory {
	f.epochAdjustment = epoch
	if !f.deadlineSet {
		f.tx.Deadline = DefaultDeadline(epoch)
	}
	return f
}

// Deadline - explicit deadline
func (f *Factory) Deadline(d Deadline) *Factory {
	f.tx.Deadline = d
	f.deadlineSet = true
	return f
}

// MaxFee - explicit fee
func (f *Factory) MaxFee(fee uint64) *Factory {
	f.tx.MaxFee = fee
	return f
}

// Signature - signature read from a node or payload
func (f *Factory) Signature(s account.Signature) *Factory {
	f.tx.Signature = &s
	return f
}

// Signer - signer read from a node or payload
func (f *Factory) Signer(p account.PublicAccount) *Factory {
	f.tx.Signer = &p
	return f
}

// Version - schema version other than the current one
func (f *Factory) Version(v uint8) *Factory {
	f.tx.Version = v
	return f
}

// Group - how the network has seen the transaction
func (f *Factory) Group(g Group) *Factory {
	f.tx.Group = g
	return f
}

// Info - ledger metadata
func (f *Factory) Info(i *Info) *Factory {
	if nil == i {
		f.tx.Info = nil
		return f
	}
	c := *i
	f.tx.Info = &c
	return f
}

// ValueSizeDelta - size change of an updated metadata entry
func (f *Factory) ValueSizeDelta(delta int16) *Factory {
	if m, ok := f.tx.Body.(*Metadata); ok {
		m.ValueSizeDelta = delta
	}
	return f
}

// Build - a new transaction from the current state
func (f *Factory) Build() *Transaction {
	tx := f.tx
	tx.Body = copyBody(f.tx.Body)
	if nil != f.tx.Signature {
		s := *f.tx.Signature
		tx.Signature = &s
	}
	if nil != f.tx.Signer {
		p := *f.tx.Signer
		tx.Signer = &p
	}
	if nil != f.tx.Info {
		i := *f.tx.Info
		tx.Info = &i
	}
	return &tx
}

// CalculateMaxFeeFromMultiplier - fee = size × multiplier
//
// aggregates must use CalculateMaxFeeForAggregate since their final
// size depends on cosignatures that are not yet attached
func (f *Factory) CalculateMaxFeeFromMultiplier(s Serializer, multiplier uint32) (*Factory, error) {
	if f.tx.Type.IsAggregate() {
		return nil, fault.ErrUseAggregateFeeCalculation
	}
	size, err := s.Size(f.Build())
	if nil != err {
		return nil, err
	}
	f.tx.MaxFee = uint64(size) * uint64(multiplier)
	return f, nil
}

// CalculateMaxFeeForAggregate - fee including space for missing cosignatures
func (f *Factory) CalculateMaxFeeForAggregate(s Serializer, multiplier uint32, requiredCosignatures int) (*Factory, error) {
	a, ok := f.tx.Body.(*Aggregate)
	if !ok {
		return nil, fault.ErrNotAggregate
	}
	size, err := s.Size(f.Build())
	if nil != err {
		return nil, err
	}
	missing := requiredCosignatures - len(a.Cosignatures)
	if missing < 0 {
		missing = 0
	}
	f.tx.MaxFee = uint64(size+missing*CosignatureSize) * uint64(multiplier)
	return f, nil
}

// CalculateTransactionsHash - derive the merkle root of the inner transactions
func (f *Factory) CalculateTransactionsHash(s Serializer) (*Factory, error) {
	a, ok := f.tx.Body.(*Aggregate)
	if !ok {
		return nil, fault.ErrNotAggregate
	}
	d, err := TransactionsHash(s, a.Inner)
	if nil != err {
		return nil, err
	}
	a.TransactionsHash = d
	return f, nil
}

// TransactionsHash - merkle root over the SHA3-256 of each embedded
// serialization in order; no transactions gives the zero digest
func TransactionsHash(s Serializer, inner []Embedded) (merkle.Digest, error) {
	leaves := make([]merkle.Digest, 0, len(inner))
	for _, e := range inner {
		b, err := s.SerializeEmbedded(e)
		if nil != err {
			return merkle.Digest{}, err
		}
		leaves = append(leaves, merkle.NewDigest(b))
	}
	return merkle.Root(leaves), nil
}
