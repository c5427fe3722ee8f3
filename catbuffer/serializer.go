// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catbuffer

import (
	"errors"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// fixed layout of the headers
const (
	HeaderSize         = 128
	EmbeddedHeaderSize = 48

	SignatureOffset = 8
	SignerOffset    = SignatureOffset + account.SignatureLength
	VersionOffset   = 108
	NetworkOffset   = 109
	TypeOffset      = 110
	MaxFeeOffset    = 112
	DeadlineOffset  = 120

	EmbeddedTypeOffset = 46
)

// Serializer - the catbuffer codec
//
// it has no state and a zero value is ready to use
type Serializer struct{}

// check the interface is satisfied
var _ transaction.Serializer = Serializer{}

// fields read from a header that the body decoder needs
type header struct {
	version  uint8
	network  chain.NetworkType
	kind     transaction.Type
	deadline transaction.Deadline
	maxFee   uint64
}

type packer func(s Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error)
type unpacker func(s Serializer, r *reader, h header) (*transaction.Factory, error)

type codec struct {
	pack   packer
	unpack unpacker
}

// one entry per registered kind, filled by init since the aggregate
// codec refers back to the serializer
var codecs map[transaction.Type]codec

// Serialize - full payload, signature and signer are zero when the
// transaction is not signed
func (s Serializer) Serialize(tx *transaction.Transaction) ([]byte, error) {
	if nil == tx {
		return nil, fault.ErrInvalidTransaction
	}
	c, err := lookup(tx.Type, tx.Body)
	if nil != err {
		return nil, err
	}

	buffer := make([]byte, 0, HeaderSize+64)
	buffer = appendUint32(buffer, 0) // size, written last
	buffer = appendUint32(buffer, 0)
	if nil != tx.Signature {
		buffer = appendBytes(buffer, tx.Signature[:])
	} else {
		buffer = appendBytes(buffer, make([]byte, account.SignatureLength))
	}
	if nil != tx.Signer {
		buffer = appendBytes(buffer, tx.Signer.PublicKey[:])
	} else {
		buffer = appendBytes(buffer, make([]byte, account.PublicKeyLength))
	}
	buffer = appendUint32(buffer, 0)
	buffer = appendUint8(buffer, tx.Version)
	buffer = appendUint8(buffer, tx.Network.Byte())
	buffer = appendUint16(buffer, uint16(tx.Type))
	buffer = appendUint64(buffer, tx.MaxFee)
	buffer = appendUint64(buffer, tx.Deadline.Uint64())

	buffer, err = c.pack(s, buffer, tx)
	if nil != err {
		return nil, err
	}
	putSize(buffer)
	return buffer, nil
}

// SerializeEmbedded - inner transaction form used inside aggregates:
// no signature, fee or deadline
func (s Serializer) SerializeEmbedded(e transaction.Embedded) ([]byte, error) {
	tx := e.Transaction
	if nil == tx {
		return nil, fault.ErrInvalidTransaction
	}
	if tx.Type.IsAggregate() {
		return nil, fault.ErrEmbeddedNotAllowed
	}
	c, err := lookup(tx.Type, tx.Body)
	if nil != err {
		return nil, err
	}

	buffer := make([]byte, 0, EmbeddedHeaderSize+64)
	buffer = appendUint32(buffer, 0)
	buffer = appendUint32(buffer, 0)
	buffer = appendBytes(buffer, e.Signer.PublicKey[:])
	buffer = appendUint32(buffer, 0)
	buffer = appendUint8(buffer, tx.Version)
	buffer = appendUint8(buffer, tx.Network.Byte())
	buffer = appendUint16(buffer, uint16(tx.Type))

	buffer, err = c.pack(s, buffer, tx)
	if nil != err {
		return nil, err
	}
	putSize(buffer)
	return buffer, nil
}

// Size - length of the serialized payload
func (s Serializer) Size(tx *transaction.Transaction) (int, error) {
	buffer, err := s.Serialize(tx)
	if nil != err {
		return 0, err
	}
	return len(buffer), nil
}

// Deserialize - rebuild a transaction from a full payload
//
// the size field must match the buffer and every byte must be used
func (s Serializer) Deserialize(payload []byte) (*transaction.Transaction, error) {
	r := newReader(payload, 0)
	size := r.uint32("size")
	if nil == r.err && int(size) != len(payload) {
		return nil, fault.Wire("size", 0, fault.ErrPayloadSize)
	}
	r.skip("reserved", 4)
	signature := r.signature("signature")
	signer := r.publicKey("signer")
	r.skip("reserved", 4)
	h := readHeader(r)
	h.maxFee = r.uint64("maxFee")
	h.deadline = transaction.Deadline(r.uint64("deadline"))
	if nil != r.err {
		return nil, r.err
	}

	f, err := s.unpackBody(r, h)
	if nil != err {
		return nil, err
	}
	f.Version(h.version).MaxFee(h.maxFee).Deadline(h.deadline)
	if !signature.IsZero() {
		f.Signature(signature)
	}
	if !signer.IsZero() {
		f.Signer(account.PublicAccount{PublicKey: signer, Network: h.network})
	}
	return f.Build(), nil
}

// DeserializeEmbedded - rebuild an inner transaction; deadline and
// fee are zero since they belong to the enclosing aggregate
func (s Serializer) DeserializeEmbedded(payload []byte) (transaction.Embedded, error) {
	return s.deserializeEmbedded(payload, 0, 0, 0)
}

func (s Serializer) deserializeEmbedded(payload []byte, base int, deadline transaction.Deadline, maxFee uint64) (transaction.Embedded, error) {
	r := newReader(payload, base)
	size := r.uint32("size")
	if nil == r.err && int(size) != len(payload) {
		return transaction.Embedded{}, fault.Wire("size", base, fault.ErrPayloadSize)
	}
	r.skip("reserved", 4)
	signer := r.publicKey("signer")
	r.skip("reserved", 4)
	h := readHeader(r)
	h.deadline = deadline
	h.maxFee = maxFee
	if nil != r.err {
		return transaction.Embedded{}, r.err
	}
	if h.kind.IsAggregate() {
		return transaction.Embedded{}, fault.Wire("type", base+EmbeddedTypeOffset, fault.ErrEmbeddedNotAllowed)
	}

	f, err := s.unpackBody(r, h)
	if nil != err {
		return transaction.Embedded{}, err
	}
	pub := account.PublicAccount{PublicKey: signer, Network: h.network}
	tx := f.Version(h.version).MaxFee(maxFee).Deadline(deadline).Signer(pub).Build()
	return transaction.Embedded{
		Signer:      pub,
		Transaction: tx,
	}, nil
}

// version, network and type; common to both headers
func readHeader(r *reader) header {
	h := header{}
	h.version = r.uint8("version")

	start := r.position()
	n := r.uint8("network")
	if nil == r.err {
		network, err := chain.NetworkTypeFromByte(n)
		if nil != err {
			r.err = fault.Wire("network", start, err)
		}
		h.network = network
	}

	start = r.position()
	code := r.uint16("type")
	if nil == r.err {
		t, err := transaction.TypeFromRaw(code)
		if nil != err {
			r.err = fault.Wire("type", start, err)
		} else if !t.AcceptsVersion(h.version) {
			r.err = fault.Wire("version", start-2, fault.ErrInvalidVersion)
		}
		h.kind = t
	}
	return h
}

// decode the body and check nothing is left over; validation
// failures from the factories are reported at the start of the body
func (s Serializer) unpackBody(r *reader, h header) (*transaction.Factory, error) {
	c, ok := codecs[h.kind]
	if !ok {
		return nil, fault.Wire("type", r.position(), fault.ErrUnknownTransactionType)
	}
	start := r.position()
	f, err := c.unpack(s, r, h)
	if nil != err {
		var w *fault.WireError
		if errors.As(err, &w) {
			return nil, err
		}
		return nil, fault.Wire(h.kind.String(), start, err)
	}
	if err := r.finish(); nil != err {
		return nil, err
	}
	return f, nil
}

func lookup(t transaction.Type, body transaction.Body) (codec, error) {
	c, ok := codecs[t]
	if !ok {
		return codec{}, fault.ErrUnknownTransactionType
	}
	if !transaction.ValidBody(t, body) {
		return codec{}, fault.ErrInvalidTransaction
	}
	return c, nil
}
