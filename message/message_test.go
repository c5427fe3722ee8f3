// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/message"
)

func TestPlain(t *testing.T) {
	m, err := message.NewPlain("Hello")
	assert.Nil(t, err, "new plain")
	assert.Equal(t, 6, m.Size(), "size")
	assert.Equal(t, "48656C6C6F", m.PayloadHex(), "hex payload")

	expected := []byte{0x00, 0x48, 0x65, 0x6c, 0x6c, 0x6f}
	if !bytes.Equal(m.Bytes(), expected) {
		t.Errorf("bytes: %x  expected: %x", m.Bytes(), expected)
	}

	m2, err := message.FromBytes(expected)
	assert.Nil(t, err, "from bytes")
	assert.Equal(t, m, m2, "round trip")

	m3, err := message.FromHex(message.Plain, "48656C6C6F")
	assert.Nil(t, err, "from hex")
	assert.Equal(t, "Hello", m3.Text(), "text")
}

func TestEmpty(t *testing.T) {
	m, err := message.FromBytes(nil)
	assert.Nil(t, err, "empty")
	assert.Nil(t, m, "empty is no message")
	assert.Equal(t, 0, m.Size(), "nil size")
	assert.Nil(t, m.Bytes(), "nil bytes")
}

func TestInvalid(t *testing.T) {
	_, err := message.New(message.Plain, make([]byte, message.MaxPayloadLength+1))
	assert.Equal(t, fault.ErrMessageTooLong, err, "too long")

	_, err = message.FromHex(message.Encrypted, "xyz")
	assert.Equal(t, fault.ErrInvalidMessage, err, "bad hex")

	_, err = message.NewPlain(string([]byte{0xff, 0xfe}))
	assert.Equal(t, fault.ErrInvalidMessage, err, "bad utf-8")

	_, err = message.NewPlain(strings.Repeat("a", message.MaxPayloadLength))
	assert.Nil(t, err, "maximum length")
}
