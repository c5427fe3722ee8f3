// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catbuffer

import (
	"encoding/binary"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// offsets inside a serialized aggregate
const (
	TransactionsHashOffset = HeaderSize
	PayloadSizeOffset      = TransactionsHashOffset + 32
)

// aggregate:
//   transactionsHash(32) payloadSize(4) reserved(4)
//   embedded transactions, each padded to 8 bytes
//   cosignatures: version(8) signer(32) signature(64)
//
// payloadSize counts the embedded transactions with their padding;
// a zero transactions hash is replaced by the derived one
func packAggregate(s Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.Aggregate)
	if !b.IsFullyLoaded() {
		return nil, fault.ErrAggregateNotFullyLoaded
	}

	payload := make([]byte, 0, 256)
	for _, e := range b.Inner {
		inner, err := s.SerializeEmbedded(e)
		if nil != err {
			return nil, err
		}
		payload = appendBytes(payload, inner)
		payload = appendBytes(payload, make([]byte, padding(len(inner))))
	}

	hash := b.TransactionsHash
	if hash.IsZero() {
		h, err := transaction.TransactionsHash(s, b.Inner)
		if nil != err {
			return nil, err
		}
		hash = h
	}

	buffer = appendBytes(buffer, hash[:])
	buffer = appendUint32(buffer, uint32(len(payload)))
	buffer = appendUint32(buffer, 0)
	buffer = appendBytes(buffer, payload)
	for _, c := range b.Cosignatures {
		buffer = appendCosignature(buffer, c)
	}
	return buffer, nil
}

func appendCosignature(buffer []byte, c transaction.Cosignature) []byte {
	buffer = appendUint64(buffer, c.Version)
	buffer = appendBytes(buffer, c.Signer.PublicKey[:])
	return appendBytes(buffer, c.Signature[:])
}

// inner transactions take the deadline and fee of the aggregate
func unpackAggregate(s Serializer, r *reader, h header) (*transaction.Factory, error) {
	hashOffset := r.position()
	hash := r.digest("transactionsHash")
	payloadSize := int(r.uint32("payloadSize"))
	r.skip("reserved", 4)
	start := r.position()
	payload := r.take("transactions", payloadSize)
	if nil != r.err {
		return nil, r.err
	}

	var inner []transaction.Embedded
	offset := 0
	for offset < len(payload) {
		if len(payload)-offset < 4 {
			return nil, fault.Wire("embeddedSize", start+offset, fault.ErrTruncated)
		}
		size := int(binary.LittleEndian.Uint32(payload[offset:]))
		if size < EmbeddedHeaderSize || size > len(payload)-offset {
			return nil, fault.Wire("embeddedSize", start+offset, fault.ErrPayloadSize)
		}
		e, err := s.deserializeEmbedded(payload[offset:offset+size], start+offset, h.deadline, h.maxFee)
		if nil != err {
			return nil, err
		}
		inner = append(inner, e)
		offset += size + padding(size)
	}
	if offset != len(payload) {
		return nil, fault.Wire("transactions", start+len(payload), fault.ErrPayloadSize)
	}

	if 0 != r.remaining()%transaction.CosignatureSize {
		return nil, fault.Wire("cosignatures", r.position(), fault.ErrCosignatureSize)
	}
	var cosignatures []transaction.Cosignature
	for nil == r.err && r.remaining() > 0 {
		version := r.uint64("cosignatureVersion")
		signer := r.publicKey("cosignatureSigner")
		signature := r.signature("cosignature")
		cosignatures = append(cosignatures, transaction.Cosignature{
			Version:   version,
			Signer:    account.PublicAccount{PublicKey: signer, Network: h.network},
			Signature: signature,
		})
	}
	if nil != r.err {
		return nil, r.err
	}

	f, err := transaction.NewAggregateFactoryWithHash(h.kind, h.network, inner, cosignatures, hash)
	if nil == err {
		return f, nil
	}
	if fault.ErrMissingTransactionsHash == err {
		return nil, fault.Wire("transactionsHash", hashOffset, err)
	}
	return nil, err
}
