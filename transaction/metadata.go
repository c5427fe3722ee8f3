// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

// XorValues - byte wise XOR of two values, the shorter one is padded
// with zeros to the length of the longer
func XorValues(previous []byte, next []byte) []byte {
	n := len(previous)
	if len(next) > n {
		n = len(next)
	}
	result := make([]byte, n)
	copy(result, previous)
	for i, b := range next {
		result[i] ^= b
	}
	return result
}

// MetadataUpdate - value and size delta that replace previous with next
// in an existing metadata entry
func MetadataUpdate(previous []byte, next []byte) ([]byte, int16) {
	return XorValues(previous, next), int16(len(next) - len(previous))
}

// ApplyMetadataUpdate - the value stored after an update is applied
func ApplyMetadataUpdate(previous []byte, value []byte, delta int16) []byte {
	result := XorValues(previous, value)
	n := len(previous) + int(delta)
	if n < 0 {
		n = 0
	}
	if n > len(result) {
		n = len(result)
	}
	return result[:n]
}
