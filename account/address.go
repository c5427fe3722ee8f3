// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"encoding/hex"
	"io"
	"strings"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// miscellaneous constants
const (
	AddressLength        = 24
	AddressPlainLength   = 39
	AddressEncodedLength = 2 * AddressLength

	ripemdLength   = ripemd160.Size
	checksumStart  = 1 + ripemdLength
	checksumLength = AddressLength - checksumStart

	// low bit of the network byte marks a namespace alias
	aliasFlag = 0x01
)

var plainEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Address - network byte, RIPEMD160(SHA3-256(public key)), checksum
//
// an address whose network byte has the alias flag set is an
// unresolved reference to a namespace rather than an account
type Address [AddressLength]byte

// AddressFromPublicKey - derive the account address
func AddressFromPublicKey(key PublicKey, network chain.NetworkType) Address {
	h := sha3.Sum256(key[:])
	r := ripemd160.New()
	r.Write(h[:])

	var a Address
	a[0] = network.Byte()
	copy(a[1:checksumStart], r.Sum(nil))
	copy(a[checksumStart:], checksum(a[:checksumStart]))
	return a
}

// AddressFromNamespace - alias address for a namespace id
func AddressFromNamespace(namespaceID uint64, network chain.NetworkType) Address {
	var a Address
	a[0] = network.Byte() | aliasFlag
	binary.LittleEndian.PutUint64(a[1:9], namespaceID)
	return a
}

// GenerateRandomAddress - address of a freshly generated key
func GenerateRandomAddress(network chain.NetworkType) (Address, error) {
	var key PublicKey
	if _, err := io.ReadFull(rand.Reader, key[:]); nil != err {
		return Address{}, err
	}
	return AddressFromPublicKey(key, network), nil
}

// AddressFromEncoded - decode the 48 hex digit form
func AddressFromEncoded(s string) (Address, error) {
	var a Address
	if AddressEncodedLength != len(s) {
		return a, fault.ErrInvalidAddress
	}
	if _, err := hex.Decode(a[:], []byte(s)); nil != err {
		return a, fault.ErrInvalidAddress
	}
	return a, a.validate()
}

// AddressFromPlain - decode the 39 character base32 form, dashes are ignored
func AddressFromPlain(s string) (Address, error) {
	var a Address
	s = strings.ToUpper(strings.Replace(strings.TrimSpace(s), "-", "", -1))
	if AddressPlainLength != len(s) {
		return a, fault.ErrInvalidAddress
	}
	b, err := plainEncoding.DecodeString(s)
	if nil != err || AddressLength != len(b) {
		return a, fault.ErrInvalidAddress
	}
	copy(a[:], b)
	return a, a.validate()
}

// AddressFromBytes - validate a raw 24 byte value
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if AddressLength != len(b) {
		return a, fault.ErrInvalidAddress
	}
	copy(a[:], b)
	return a, a.validate()
}

// AddressFromString - either the plain or the encoded form
func AddressFromString(s string) (Address, error) {
	if AddressEncodedLength == len(s) {
		return AddressFromEncoded(s)
	}
	return AddressFromPlain(s)
}

// alias addresses carry no checksum
func (a Address) validate() error {
	if a.IsAlias() {
		if _, err := chain.NetworkTypeFromByte(a[0] &^ aliasFlag); nil != err {
			return err
		}
		return nil
	}
	if _, err := chain.NetworkTypeFromByte(a[0]); nil != err {
		return err
	}
	if !bytes.Equal(checksum(a[:checksumStart]), a[checksumStart:]) {
		return fault.ErrAddressChecksum
	}
	return nil
}

// IsValid - network and checksum are correct
func (a Address) IsValid() bool {
	return nil == a.validate()
}

// IsAlias - true if this is a namespace alias
func (a Address) IsAlias() bool {
	return 0 != a[0]&aliasFlag
}

// NamespaceID - the namespace referenced by an alias address
func (a Address) NamespaceID() (uint64, bool) {
	if !a.IsAlias() {
		return 0, false
	}
	return binary.LittleEndian.Uint64(a[1:9]), true
}

// NetworkType - network byte with any alias flag removed
func (a Address) NetworkType() chain.NetworkType {
	return chain.NetworkType(a[0] &^ aliasFlag)
}

// Plain - base32 text
func (a Address) Plain() string {
	return plainEncoding.EncodeToString(a[:])
}

// Pretty - plain text in dash separated groups of six
func (a Address) Pretty() string {
	p := a.Plain()
	parts := make([]string, 0, 7)
	for i := 0; i < len(p); i += 6 {
		j := i + 6
		if j > len(p) {
			j = len(p)
		}
		parts = append(parts, p[i:j])
	}
	return strings.Join(parts, "-")
}

// Encoded - upper case hex as used on the wire and in REST
func (a Address) Encoded() string {
	return strings.ToUpper(hex.EncodeToString(a[:]))
}

func (a Address) String() string {
	return a.Plain()
}

// MarshalText - hex form for JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Encoded()), nil
}

// UnmarshalText - accept either textual form
func (a *Address) UnmarshalText(s []byte) error {
	address, err := AddressFromString(string(s))
	if nil != err {
		return err
	}
	*a = address
	return nil
}

func checksum(b []byte) []byte {
	h := sha3.Sum256(b)
	return h[:checksumLength]
}
