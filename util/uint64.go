// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// Uint64Length - bytes in the wire encoding of a 64 bit value
const Uint64Length = 8

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// Uint64FromWords - combine the low and high 32 bit words
func Uint64FromWords(lo uint32, hi uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

// Uint64ToWords - split into the low and high 32 bit words
func Uint64ToWords(value uint64) (uint32, uint32) {
	return uint32(value), uint32(value >> 32)
}

// Uint64ToBytes - little endian wire encoding
func Uint64ToBytes(value uint64) []byte {
	buffer := make([]byte, Uint64Length)
	binary.LittleEndian.PutUint64(buffer, value)
	return buffer
}

// Uint64FromBytes - decode the first 8 bytes as little endian
func Uint64FromBytes(buffer []byte) (uint64, error) {
	if len(buffer) < Uint64Length {
		return 0, fault.ErrTruncated
	}
	return binary.LittleEndian.Uint64(buffer), nil
}

// Uint64ToHex - upper case big endian hex, always 16 digits
//
// this is the form used for mosaic and namespace ids in REST
func Uint64ToHex(value uint64) string {
	return fmt.Sprintf("%016X", value)
}

// Uint64FromHex - parse up to 16 hex digits
func Uint64FromHex(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if 0 == len(s) || len(s) > 2*Uint64Length {
		return 0, fault.ErrHexDecode
	}
	if 1 == len(s)%2 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return 0, fault.ErrHexDecode
	}
	value := uint64(0)
	for _, v := range b {
		value = value<<8 | uint64(v)
	}
	return value, nil
}

// Uint64ToDecimal - decimal text
func Uint64ToDecimal(value uint64) string {
	return strconv.FormatUint(value, 10)
}

// Uint64FromDecimal - parse decimal text
func Uint64FromDecimal(s string) (uint64, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if nil != err {
		if ne, ok := err.(*strconv.NumError); ok && strconv.ErrRange == ne.Err {
			return 0, fault.ErrUint64OutOfRange
		}
		return 0, fault.ErrInvalidAmount
	}
	return value, nil
}

// Uint64ToBig - arbitrary precision copy of the value
func Uint64ToBig(value uint64) *big.Int {
	return new(big.Int).SetUint64(value)
}

// Uint64FromBig - range checked conversion
func Uint64FromBig(value *big.Int) (uint64, error) {
	if nil == value || value.Sign() < 0 || value.Cmp(maxUint64) > 0 {
		return 0, fault.ErrUint64OutOfRange
	}
	return value.Uint64(), nil
}
