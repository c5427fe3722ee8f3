// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"
	"io"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// PrivateKeyLength - bytes in the private key seed
const PrivateKeyLength = ed25519.SeedSize

// KeyPair - an ed25519 signing key
type KeyPair struct {
	privateKey ed25519.PrivateKey
	publicKey  PublicKey
}

// NewKeyPair - generate a key from a random source
func NewKeyPair(random io.Reader) (*KeyPair, error) {
	_, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return keyPairFromPrivate(privateKey), nil
}

// KeyPairFromPrivateKey - accepts either the 32 byte seed or the 64 byte expanded key
func KeyPairFromPrivateKey(b []byte) (*KeyPair, error) {
	switch len(b) {
	case ed25519.SeedSize:
		return keyPairFromPrivate(ed25519.NewKeyFromSeed(b)), nil
	case ed25519.PrivateKeySize:
		privateKey := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
		if !bytes.Equal(privateKey, b) {
			return nil, fault.ErrInvalidPrivateKey
		}
		return keyPairFromPrivate(privateKey), nil
	default:
		return nil, fault.ErrInvalidKeyLength
	}
}

// KeyPairFromPrivateHex - hex form of KeyPairFromPrivateKey
func KeyPairFromPrivateHex(s string) (*KeyPair, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	return KeyPairFromPrivateKey(b)
}

func keyPairFromPrivate(privateKey ed25519.PrivateKey) *KeyPair {
	kp := &KeyPair{
		privateKey: privateKey,
	}
	copy(kp.publicKey[:], privateKey.Public().(ed25519.PublicKey))
	return kp
}

// PublicKey - the verification key
func (kp *KeyPair) PublicKey() PublicKey {
	return kp.publicKey
}

// PrivateKey - the 32 byte seed
func (kp *KeyPair) PrivateKey() []byte {
	return kp.privateKey.Seed()
}

// PrivateKeyHex - upper case hex of the seed
func (kp *KeyPair) PrivateKeyHex() string {
	return strings.ToUpper(hex.EncodeToString(kp.PrivateKey()))
}

// Sign - deterministic ed25519 signature
func (kp *KeyPair) Sign(message []byte) Signature {
	var signature Signature
	copy(signature[:], ed25519.Sign(kp.privateKey, message))
	return signature
}

// Verify - check a signature against a public key
func Verify(key PublicKey, message []byte, signature Signature) bool {
	return ed25519.Verify(key[:], message, signature[:])
}

// PublicAccount - public key bound to a network
type PublicAccount struct {
	PublicKey PublicKey         `json:"publicKey"`
	Network   chain.NetworkType `json:"network"`
}

// NewPublicAccount - from a hex public key
func NewPublicAccount(publicKeyHex string, network chain.NetworkType) (PublicAccount, error) {
	key, err := PublicKeyFromHex(publicKeyHex)
	if nil != err {
		return PublicAccount{}, err
	}
	if !network.Valid() {
		return PublicAccount{}, fault.ErrInvalidNetworkType
	}
	return PublicAccount{PublicKey: key, Network: network}, nil
}

// Address - derived account address
func (p PublicAccount) Address() Address {
	return AddressFromPublicKey(p.PublicKey, p.Network)
}

// Verify - check a signature made by this account
func (p PublicAccount) Verify(message []byte, signature Signature) bool {
	return Verify(p.PublicKey, message, signature)
}

func (p PublicAccount) String() string {
	return p.PublicKey.String()
}

// Account - a key pair bound to a network
type Account struct {
	*KeyPair
	Network chain.NetworkType
}

// NewAccount - generate a random account
func NewAccount(random io.Reader, network chain.NetworkType) (*Account, error) {
	if !network.Valid() {
		return nil, fault.ErrInvalidNetworkType
	}
	kp, err := NewKeyPair(random)
	if nil != err {
		return nil, err
	}
	return &Account{KeyPair: kp, Network: network}, nil
}

// AccountFromPrivateHex - account from a hex private key
func AccountFromPrivateHex(s string, network chain.NetworkType) (*Account, error) {
	if !network.Valid() {
		return nil, fault.ErrInvalidNetworkType
	}
	kp, err := KeyPairFromPrivateHex(s)
	if nil != err {
		return nil, err
	}
	return &Account{KeyPair: kp, Network: network}, nil
}

// PublicAccount - the public part
func (a *Account) PublicAccount() PublicAccount {
	return PublicAccount{PublicKey: a.publicKey, Network: a.Network}
}

// Address - derived account address
func (a *Account) Address() Address {
	return AddressFromPublicKey(a.publicKey, a.Network)
}
