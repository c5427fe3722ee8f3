// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catbuffer

import (
	"encoding/binary"

	"github.com/bitmark-inc/symbol-sdk-go/account"
)

// append little endian fields to a buffer

func appendUint8(buffer []byte, value uint8) []byte {
	return append(buffer, value)
}

func appendUint16(buffer []byte, value uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint32(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

func appendBytes(buffer []byte, data []byte) []byte {
	return append(buffer, data...)
}

func appendAddresses(buffer []byte, addresses []account.Address) []byte {
	for _, a := range addresses {
		buffer = append(buffer, a[:]...)
	}
	return buffer
}

// zero bytes up to the next multiple of 8
func padding(n int) int {
	return (8 - n%8) % 8
}

// overwrite the size field at the start of a buffer
func putSize(buffer []byte) {
	binary.LittleEndian.PutUint32(buffer[0:4], uint32(len(buffer)))
}
