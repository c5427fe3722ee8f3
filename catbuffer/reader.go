// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catbuffer

import (
	"encoding/binary"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
)

// reader - sequential little endian reads with a sticky error
//
// after the first failure every read returns a zero value and err
// holds the failure with its field and position; base is added to
// offsets so errors inside an aggregate refer to the whole payload
type reader struct {
	buffer []byte
	offset int
	base   int
	err    error
}

func newReader(buffer []byte, base int) *reader {
	return &reader{
		buffer: buffer,
		base:   base,
	}
}

// position in the complete payload
func (r *reader) position() int {
	return r.base + r.offset
}

func (r *reader) remaining() int {
	return len(r.buffer) - r.offset
}

func (r *reader) fail(field string, err error) {
	if nil == r.err {
		r.err = fault.Wire(field, r.position(), err)
	}
}

// take - next n bytes, not copied
func (r *reader) take(field string, n int) []byte {
	if nil != r.err {
		return nil
	}
	if n < 0 || r.remaining() < n {
		r.fail(field, fault.ErrTruncated)
		return nil
	}
	b := r.buffer[r.offset : r.offset+n]
	r.offset += n
	return b
}

func (r *reader) bytes(field string, n int) []byte {
	b := r.take(field, n)
	if nil == b {
		return nil
	}
	c := make([]byte, n)
	copy(c, b)
	return c
}

func (r *reader) uint8(field string) uint8 {
	b := r.take(field, 1)
	if nil == b {
		return 0
	}
	return b[0]
}

func (r *reader) uint16(field string) uint16 {
	b := r.take(field, 2)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *reader) uint32(field string) uint32 {
	b := r.take(field, 4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) uint64(field string) uint64 {
	b := r.take(field, 8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *reader) skip(field string, n int) {
	r.take(field, n)
}

func (r *reader) address(field string) account.Address {
	start := r.position()
	b := r.take(field, account.AddressLength)
	if nil == b {
		return account.Address{}
	}
	a, err := account.AddressFromBytes(b)
	if nil != err && nil == r.err {
		r.err = fault.Wire(field, start, err)
	}
	return a
}

func (r *reader) addresses(field string, n int) []account.Address {
	if 0 == n {
		return nil
	}
	list := make([]account.Address, 0, n)
	for i := 0; i < n; i += 1 {
		list = append(list, r.address(field))
	}
	return list
}

func (r *reader) publicKey(field string) account.PublicKey {
	var key account.PublicKey
	copy(key[:], r.take(field, account.PublicKeyLength))
	return key
}

func (r *reader) signature(field string) account.Signature {
	var signature account.Signature
	copy(signature[:], r.take(field, account.SignatureLength))
	return signature
}

func (r *reader) digest(field string) merkle.Digest {
	var d merkle.Digest
	copy(d[:], r.take(field, merkle.DigestLength))
	return d
}

// finish - the whole buffer must be consumed
func (r *reader) finish() error {
	if nil == r.err && 0 != r.remaining() {
		r.fail("trailing", fault.ErrTrailingData)
	}
	return r.err
}
