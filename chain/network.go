// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"strings"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// NetworkType - identifies the target ledger
//
// this is the first byte of every address and is carried in the
// header of every transaction
type NetworkType byte

// all known networks
const (
	MainNet     = NetworkType(0x68)
	TestNet     = NetworkType(0x98)
	Mijin       = NetworkType(0x60)
	MijinTest   = NetworkType(0x90)
	Private     = NetworkType(0x78)
	PrivateTest = NetworkType(0xa8)
)

var names = map[NetworkType]string{
	MainNet:     "main",
	TestNet:     "test",
	Mijin:       "mijin",
	MijinTest:   "mijin_test",
	Private:     "private",
	PrivateTest: "private_test",
}

// NetworkTypeFromByte - validate a raw network byte
func NetworkTypeFromByte(b byte) (NetworkType, error) {
	n := NetworkType(b)
	if _, ok := names[n]; !ok {
		return 0, fault.ErrInvalidNetworkType
	}
	return n, nil
}

// NetworkTypeFromName - convert a configuration name
func NetworkTypeFromName(name string) (NetworkType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "main", "mainnet", "main_net", "public":
		return MainNet, nil
	case "test", "testnet", "test_net", "public_test":
		return TestNet, nil
	case "mijin":
		return Mijin, nil
	case "mijin_test", "mijintest":
		return MijinTest, nil
	case "private":
		return Private, nil
	case "private_test", "privatetest":
		return PrivateTest, nil
	default:
		return 0, fault.ErrInvalidNetworkType
	}
}

// Valid - true for a known network
func (n NetworkType) Valid() bool {
	_, ok := names[n]
	return ok
}

// Byte - raw value
func (n NetworkType) Byte() byte {
	return byte(n)
}

func (n NetworkType) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return "unknown"
}
