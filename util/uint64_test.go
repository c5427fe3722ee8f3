// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

var uint64Tests = []struct {
	value   uint64
	lo      uint32
	hi      uint32
	encoded []byte
	hex     string
}{
	{0, 0, 0, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, "0000000000000000"},
	{1, 1, 0, []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, "0000000000000001"},
	{0xffffffff, 0xffffffff, 0, []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00}, "00000000FFFFFFFF"},
	{0x100000000, 0, 1, []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}, "0000000100000000"},
	{0x85bbea6cc462b244, 0xc462b244, 0x85bbea6c, []byte{0x44, 0xb2, 0x62, 0xc4, 0x6c, 0xea, 0xbb, 0x85}, "85BBEA6CC462B244"},
	{0x8000000000000000, 0, 0x80000000, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}, "8000000000000000"},
	{0xffffffffffffffff, 0xffffffff, 0xffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "FFFFFFFFFFFFFFFF"},
}

func TestUint64Words(t *testing.T) {
	for i, item := range uint64Tests {
		lo, hi := util.Uint64ToWords(item.value)
		if lo != item.lo || hi != item.hi {
			t.Errorf("%d: words: [%x, %x] expected: [%x, %x]", i, lo, hi, item.lo, item.hi)
		}
		if v := util.Uint64FromWords(lo, hi); v != item.value {
			t.Errorf("%d: from words: %x expected: %x", i, v, item.value)
		}
	}
}

func TestUint64Bytes(t *testing.T) {
	for i, item := range uint64Tests {
		b := util.Uint64ToBytes(item.value)
		if !bytes.Equal(b, item.encoded) {
			t.Errorf("%d: encoded: %x expected: %x", i, b, item.encoded)
			t.Errorf("*** GENERATED:\n%s", util.FormatBytes("encoded", b))
		}
		v, err := util.Uint64FromBytes(b)
		if nil != err {
			t.Fatalf("%d: decode error: %s", i, err)
		}
		if v != item.value {
			t.Errorf("%d: decoded: %x expected: %x", i, v, item.value)
		}
	}
}

func TestUint64Hex(t *testing.T) {
	for i, item := range uint64Tests {
		s := util.Uint64ToHex(item.value)
		assert.Equal(t, item.hex, s, "%d: wrong hex", i)
		v, err := util.Uint64FromHex(s)
		assert.Nil(t, err, "%d: hex decode error", i)
		assert.Equal(t, item.value, v, "%d: wrong value", i)
	}

	v, err := util.Uint64FromHex("abc")
	assert.Nil(t, err, "short hex")
	assert.Equal(t, uint64(0xabc), v, "short hex value")

	_, err = util.Uint64FromHex("00000000000000001")
	assert.Equal(t, fault.ErrHexDecode, err, "too long hex")
	_, err = util.Uint64FromHex("xyz")
	assert.Equal(t, fault.ErrHexDecode, err, "bad hex")
}

func TestUint64DecimalAndBig(t *testing.T) {
	for i, item := range uint64Tests {
		v, err := util.Uint64FromDecimal(util.Uint64ToDecimal(item.value))
		assert.Nil(t, err, "%d: decimal error", i)
		assert.Equal(t, item.value, v, "%d: decimal round trip", i)

		v, err = util.Uint64FromBig(util.Uint64ToBig(item.value))
		assert.Nil(t, err, "%d: big error", i)
		assert.Equal(t, item.value, v, "%d: big round trip", i)
	}

	_, err := util.Uint64FromDecimal("18446744073709551616")
	assert.Equal(t, fault.ErrUint64OutOfRange, err, "overflow")
	_, err = util.Uint64FromDecimal("-1")
	assert.Equal(t, fault.ErrInvalidAmount, err, "negative")

	tooBig := new(big.Int).Lsh(big.NewInt(1), 64)
	_, err = util.Uint64FromBig(tooBig)
	assert.Equal(t, fault.ErrUint64OutOfRange, err, "big overflow")
	_, err = util.Uint64FromBig(big.NewInt(-1))
	assert.Equal(t, fault.ErrUint64OutOfRange, err, "big negative")
}

func TestUint64Truncated(t *testing.T) {
	_, err := util.Uint64FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrTruncated, err, "truncated")
}
