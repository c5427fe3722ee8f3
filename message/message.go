// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// MaxPayloadLength - payload bytes, excluding the type byte
const MaxPayloadLength = 1023

// Type - first byte of a serialized message
type Type uint8

// message types
const (
	Plain                          = Type(0x00)
	Encrypted                      = Type(0x01)
	PersistentHarvestingDelegation = Type(0xfe)
)

// Message - transfer message
type Message struct {
	Type    Type
	Payload []byte
}

// NewPlain - utf-8 text message
func NewPlain(text string) (*Message, error) {
	if !utf8.ValidString(text) {
		return nil, fault.ErrInvalidMessage
	}
	return New(Plain, []byte(text))
}

// New - message of any type
func New(t Type, payload []byte) (*Message, error) {
	if len(payload) > MaxPayloadLength {
		return nil, fault.ErrMessageTooLong
	}
	p := make([]byte, len(payload))
	copy(p, payload)
	return &Message{Type: t, Payload: p}, nil
}

// FromHex - type and hex payload as carried by REST
func FromHex(t Type, payload string) (*Message, error) {
	b, err := hex.DecodeString(payload)
	if nil != err {
		return nil, fault.ErrInvalidMessage
	}
	return New(t, b)
}

// FromBytes - the wire form: type byte then payload
//
// an empty buffer is no message
func FromBytes(b []byte) (*Message, error) {
	if 0 == len(b) {
		return nil, nil
	}
	return New(Type(b[0]), b[1:])
}

// Bytes - the wire form
func (m *Message) Bytes() []byte {
	if nil == m {
		return nil
	}
	b := make([]byte, 0, 1+len(m.Payload))
	b = append(b, byte(m.Type))
	return append(b, m.Payload...)
}

// Size - bytes in the wire form
func (m *Message) Size() int {
	if nil == m {
		return 0
	}
	return 1 + len(m.Payload)
}

// Text - payload as a string
func (m *Message) Text() string {
	if nil == m {
		return ""
	}
	return string(m.Payload)
}

// PayloadHex - upper case hex of the payload
func (m *Message) PayloadHex() string {
	if nil == m {
		return ""
	}
	return strings.ToUpper(hex.EncodeToString(m.Payload))
}
