// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// AES-GCM parameters of an encrypted message
const (
	TagLength = 16
	IVLength  = 12

	// shortest decodable payload: tag and iv of an empty text
	MinEncryptedLength = TagLength + IVLength
)

// NewEncrypted - text readable only by the sender and the recipient
//
// the payload is the upper case hex of tag, iv then cipher text
func NewEncrypted(text string, sender *account.KeyPair, recipient account.PublicKey) (*Message, error) {
	return NewEncryptedWithRandom(rand.Reader, text, sender, recipient)
}

// NewEncryptedWithRandom - NewEncrypted with the iv taken from random
func NewEncryptedWithRandom(random io.Reader, text string, sender *account.KeyPair, recipient account.PublicKey) (*Message, error) {
	if !utf8.ValidString(text) {
		return nil, fault.ErrInvalidMessage
	}
	gcm, err := messageCipher(sender, recipient)
	if nil != err {
		return nil, err
	}

	iv := make([]byte, IVLength)
	if _, err := io.ReadFull(random, iv); nil != err {
		return nil, fault.ErrCryptoFailed
	}

	// Seal appends the tag after the cipher text
	sealed := gcm.Seal(nil, iv, []byte(text), nil)
	split := len(sealed) - TagLength

	buffer := make([]byte, 0, MinEncryptedLength+split)
	buffer = append(buffer, sealed[split:]...)
	buffer = append(buffer, iv...)
	buffer = append(buffer, sealed[:split]...)

	return New(Encrypted, []byte(strings.ToUpper(hex.EncodeToString(buffer))))
}

// Decrypt - the text of an encrypted message
//
// either party can decrypt: the recipient with the sender's public
// key, or the sender with the recipient's
func (m *Message) Decrypt(key *account.KeyPair, other account.PublicKey) (string, error) {
	if nil == m || Encrypted != m.Type {
		return "", fault.ErrInvalidMessage
	}
	buffer, err := hex.DecodeString(string(m.Payload))
	if nil != err {
		return "", fault.ErrInvalidMessage
	}
	if len(buffer) < MinEncryptedLength {
		return "", fault.ErrMessageTooShort
	}

	gcm, err := messageCipher(key, other)
	if nil != err {
		return "", err
	}

	tag := buffer[:TagLength]
	iv := buffer[TagLength:MinEncryptedLength]
	sealed := make([]byte, 0, len(buffer)-IVLength)
	sealed = append(sealed, buffer[MinEncryptedLength:]...)
	sealed = append(sealed, tag...)

	text, err := gcm.Open(nil, iv, sealed, nil)
	if nil != err {
		return "", fault.ErrDecryptionFailed
	}
	return string(text), nil
}

func messageCipher(key *account.KeyPair, other account.PublicKey) (cipher.AEAD, error) {
	shared, err := key.SharedKey(other)
	if nil != err {
		return nil, err
	}
	block, err := aes.NewCipher(shared[:])
	if nil != err {
		return nil, fault.ErrCryptoFailed
	}
	gcm, err := cipher.NewGCM(block)
	if nil != err {
		return nil, fault.ErrCryptoFailed
	}
	return gcm, nil
}
