// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

func TestNetworkTypeFromByte(t *testing.T) {
	for _, n := range []chain.NetworkType{chain.MainNet, chain.TestNet, chain.Mijin, chain.MijinTest, chain.Private, chain.PrivateTest} {
		actual, err := chain.NetworkTypeFromByte(n.Byte())
		assert.Nil(t, err, "unexpected error for %s", n)
		assert.Equal(t, n, actual, "wrong network")
		assert.True(t, n.Valid(), "not valid: %s", n)
	}

	_, err := chain.NetworkTypeFromByte(0x01)
	assert.Equal(t, fault.ErrInvalidNetworkType, err, "wrong error")
	assert.Equal(t, "unknown", chain.NetworkType(0x01).String(), "wrong name")
}

func TestNetworkTypeFromName(t *testing.T) {
	items := []struct {
		name     string
		expected chain.NetworkType
	}{
		{"main", chain.MainNet},
		{"MAINNET", chain.MainNet},
		{"public_test", chain.TestNet},
		{"test", chain.TestNet},
		{"mijin", chain.Mijin},
		{"mijin_test", chain.MijinTest},
		{"private", chain.Private},
		{" private_test ", chain.PrivateTest},
	}
	for _, item := range items {
		n, err := chain.NetworkTypeFromName(item.name)
		assert.Nil(t, err, "error for %q", item.name)
		assert.Equal(t, item.expected, n, "wrong network for %q", item.name)
	}

	_, err := chain.NetworkTypeFromName("bitmark")
	assert.Equal(t, fault.ErrInvalidNetworkType, err, "wrong error")
}

func TestPackedVersion(t *testing.T) {
	packed := chain.PackVersion(chain.MainNet, 1)
	assert.Equal(t, uint16(0x6801), packed, "wrong packed value")

	n, v, err := chain.UnpackVersion(0x6801)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, chain.MainNet, n, "wrong network")
	assert.Equal(t, uint8(1), v, "wrong version")

	for _, network := range []chain.NetworkType{chain.MainNet, chain.TestNet, chain.MijinTest} {
		for _, version := range []uint8{1, 2, 0x54} {
			n, v, err := chain.UnpackVersion(chain.PackVersion(network, version))
			assert.Nil(t, err, "unpack error")
			assert.Equal(t, network, n, "network round trip")
			assert.Equal(t, version, v, "version round trip")
		}
	}

	_, _, err = chain.UnpackVersion(0x0101)
	assert.Equal(t, fault.ErrInvalidNetworkType, err, "bad network")
	_, _, err = chain.UnpackVersion(0x9800)
	assert.Equal(t, fault.ErrInvalidVersion, err, "zero version")
}
