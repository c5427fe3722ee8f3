// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

const nonceSize = 24

func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, nil, err
	}

	return salt, key, nil
}

// argon2i of the password
func generateKey(password string, salt *Salt) (*[32]byte, error) {
	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt.Bytes())
	if nil != err {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)
	return &secretKey, nil
}

// seal data and convert to hex, the random nonce is prepended
func sealData(data []byte, secretKey *[32]byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", fault.ErrCryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], data, &nonce, secretKey)
	return hex.EncodeToString(ciphertext), nil
}

// a box that fails to open means the key, and so the password, is wrong
func openData(ciphertext string, secretKey *[32]byte) ([]byte, error) {
	if "" == ciphertext {
		return nil, fault.ErrPublicOnly
	}

	sealed, err := hex.DecodeString(ciphertext)
	if nil != err {
		return nil, fault.ErrHexDecode
	}
	if len(sealed) <= nonceSize+secretbox.Overhead {
		return nil, fault.ErrCryptoFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	data, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, secretKey)
	if !ok {
		return nil, fault.ErrWrongPassword
	}
	return data, nil
}
