// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/keystore"
)

const (
	network = chain.TestNet

	keyA = "9D61B19DEFFD5A60BA844AF492EC2CC44449C5697B326919703BAC031CAE7F60"
	keyB = "4CCD089B28FF96DA9DB6C346EC114E0F5B8A319F35ABA624DA8CF6ED4FB8A6FB"

	password = "correct horse"
)

func makeAccount(t *testing.T, privateKey string, network chain.NetworkType) *account.Account {
	a, err := account.AccountFromPrivateHex(privateKey, network)
	require.Nil(t, err, "account error")
	return a
}

func TestAddUnlock(t *testing.T) {
	k, err := keystore.New(network)
	require.Nil(t, err, "new")

	a := makeAccount(t, keyA, network)
	assert.Nil(t, k.Add("alice", "first", a, password), "add")
	assert.Equal(t, "alice", k.DefaultIdentity, "default")

	unlocked, err := k.Unlock("alice", password)
	if assert.Nil(t, err, "unlock") {
		assert.Equal(t, keyA, unlocked.PrivateKeyHex(), "private key")
		assert.Equal(t, network, unlocked.Network, "network")
	}

	unlocked, err = k.Unlock("", password)
	if assert.Nil(t, err, "unlock default") {
		assert.Equal(t, a.Address(), unlocked.Address(), "default address")
	}

	_, err = k.Unlock("alice", "wrong horse")
	assert.Equal(t, fault.ErrWrongPassword, err, "wrong password")

	_, err = k.Unlock("bob", password)
	assert.Equal(t, fault.ErrIdentityNotFound, err, "unknown identity")

	b := makeAccount(t, keyB, network)
	assert.Equal(t, fault.ErrInvalidPassword, k.Add("bob", "", b, "short"), "short password")
	assert.Equal(t, fault.ErrIdentityExists, k.Add("alice", "", b, password), "duplicate")
	assert.Equal(t, fault.ErrMissingField, k.Add(" ", "", b, password), "empty name")
	assert.Equal(t, fault.ErrWrongNetwork, k.Add("bob", "", makeAccount(t, keyB, chain.MainNet), password), "wrong network")
}

func TestAddPublic(t *testing.T) {
	k, err := keystore.New(network)
	require.Nil(t, err, "new")

	a := makeAccount(t, keyA, network)
	b := makeAccount(t, keyB, network)
	assert.Nil(t, k.AddPublic("zed", "receive only", b.PublicAccount()), "add public")
	assert.Nil(t, k.Add("alice", "signer", a, password), "add")
	assert.Equal(t, "zed", k.DefaultIdentity, "default")

	_, err = k.Unlock("zed", password)
	assert.Equal(t, fault.ErrPublicOnly, err, "unlock public")

	p, err := k.Public("zed")
	assert.Nil(t, err, "public")
	assert.Equal(t, b.PublicAccount(), p, "public account")

	entries, err := k.List()
	require.Nil(t, err, "list")
	require.Equal(t, 2, len(entries), "entries")
	assert.Equal(t, keystore.Entry{
		Name:        "alice",
		Description: "signer",
		Account:     a.PublicAccount(),
		Address:     a.Address(),
		CanSign:     true,
	}, entries[0], "alice")
	assert.Equal(t, keystore.Entry{
		Name:        "zed",
		Description: "receive only",
		Account:     b.PublicAccount(),
		Address:     b.Address(),
		CanSign:     false,
	}, entries[1], "zed")
}

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "keystore")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)
	filename := filepath.Join(dir, "keys.json")

	k, err := keystore.New(network)
	require.Nil(t, err, "new")
	a := makeAccount(t, keyA, network)
	require.Nil(t, k.Add("alice", "first", a, password), "add")
	require.Nil(t, k.Save(filename), "save")

	b := makeAccount(t, keyB, network)
	require.Nil(t, k.AddPublic("bob", "", b.PublicAccount()), "add public")
	require.Nil(t, k.Save(filename), "save again")

	_, err = os.Stat(filename + ".bk")
	assert.Nil(t, err, "backup file")
	info, err := os.Stat(filename)
	if assert.Nil(t, err, "keystore file") {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "permissions")
	}

	loaded, err := keystore.Load(filename)
	require.Nil(t, err, "load")
	assert.Equal(t, k, loaded, "loaded keystore")

	n, err := loaded.NetworkType()
	assert.Nil(t, err, "network")
	assert.Equal(t, network, n, "network")

	unlocked, err := loaded.Unlock("alice", password)
	if assert.Nil(t, err, "unlock") {
		assert.Equal(t, keyA, unlocked.PrivateKeyHex(), "private key")
	}

	previous, err := keystore.Load(filename + ".bk")
	require.Nil(t, err, "load backup")
	assert.Equal(t, 1, len(previous.Identities), "backup identities")

	_, err = keystore.Load(filepath.Join(dir, "missing.json"))
	assert.NotNil(t, err, "missing file")
}

func TestSalt(t *testing.T) {
	s, err := keystore.MakeSalt()
	require.Nil(t, err, "make salt")

	text, err := s.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, s.String(), string(text), "text")

	var r keystore.Salt
	assert.Nil(t, r.UnmarshalText(text), "unmarshal")
	assert.Equal(t, *s, r, "round trip")

	assert.Equal(t, fault.ErrInvalidKeyLength, r.UnmarshalText([]byte("0102")), "short")
	assert.Equal(t, fault.ErrHexDecode, r.UnmarshalText([]byte("not hex")), "not hex")
}
