// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"encoding/hex"
	"encoding/json"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

// numbers are kept as text so that a uint64 is never rounded
var codec = jsoniter.Config{
	UseNumber:   true,
	SortMapKeys: true,
	EscapeHTML:  false,
}.Froze()

// Node - a position inside a decoded JSON document
//
// a Node for a missing key is still valid, its getters return a
// mapping error naming the path
type Node struct {
	path  []string
	value interface{}
}

// Parse - decode a JSON document
func Parse(data []byte) (Node, error) {
	var v interface{}
	if err := codec.Unmarshal(data, &v); nil != err {
		return Node{}, fault.Mapping([]string{"$"}, fault.ErrTypeMismatch)
	}
	return Node{value: v}, nil
}

// NewNode - wrap an already decoded value
func NewNode(value interface{}) Node {
	return Node{value: value}
}

// Path - dotted location of the node
func (n Node) Path() string {
	e := fault.MappingError{Path: n.path}
	return e.PathString()
}

// Value - the raw decoded value
func (n Node) Value() interface{} {
	return n.value
}

// Fail - err located at this node
func (n Node) Fail(err error) error {
	return n.fail(err)
}

func (n Node) fail(err error) error {
	return fault.Mapping(n.path, err)
}

func (n Node) child(name string, value interface{}) Node {
	p := make([]string, len(n.path), len(n.path)+1)
	copy(p, n.path)
	return Node{path: append(p, name), value: value}
}

// IsNull - missing or explicit null
func (n Node) IsNull() bool {
	return nil == n.value
}

// Has - object contains a non-null key
func (n Node) Has(key string) bool {
	m, ok := n.value.(map[string]interface{})
	if !ok {
		return false
	}
	return nil != m[key]
}

// Get - child of an object, missing keys give a null node
func (n Node) Get(key string) Node {
	m, _ := n.value.(map[string]interface{})
	return n.child(key, m[key])
}

// First - the first of several alternative keys that is present,
// otherwise the first key as a null node
func (n Node) First(keys ...string) Node {
	for _, k := range keys {
		if n.Has(k) {
			return n.Get(k)
		}
	}
	return n.Get(keys[0])
}

// Object - the node must be an object
func (n Node) Object() (map[string]interface{}, error) {
	if n.IsNull() {
		return nil, n.fail(fault.ErrMissingField)
	}
	m, ok := n.value.(map[string]interface{})
	if !ok {
		return nil, n.fail(fault.ErrTypeMismatch)
	}
	return m, nil
}

// Array - elements of an array; a missing array is empty
func (n Node) Array() ([]Node, error) {
	if n.IsNull() {
		return nil, nil
	}
	a, ok := n.value.([]interface{})
	if !ok {
		return nil, n.fail(fault.ErrTypeMismatch)
	}
	nodes := make([]Node, len(a))
	for i, v := range a {
		nodes[i] = n.child("["+strconv.Itoa(i)+"]", v)
	}
	return nodes, nil
}

// Text - required string
func (n Node) Text() (string, error) {
	if n.IsNull() {
		return "", n.fail(fault.ErrMissingField)
	}
	s, ok := n.value.(string)
	if !ok {
		return "", n.fail(fault.ErrTypeMismatch)
	}
	return s, nil
}

// Uint64 - decimal string, plain number or a [lo, hi] pair
func (n Node) Uint64() (uint64, error) {
	switch v := n.value.(type) {
	case nil:
		return 0, n.fail(fault.ErrMissingField)
	case string:
		u, err := util.Uint64FromDecimal(v)
		if nil != err {
			return 0, n.fail(err)
		}
		return u, nil
	case json.Number:
		u, err := util.Uint64FromDecimal(v.String())
		if nil != err {
			return 0, n.fail(err)
		}
		return u, nil
	case []interface{}:
		return n.words(v)
	default:
		return 0, n.fail(fault.ErrTypeMismatch)
	}
}

// ID - hex string or a [lo, hi] pair, as used for mosaic and
// namespace ids
func (n Node) ID() (uint64, error) {
	switch v := n.value.(type) {
	case nil:
		return 0, n.fail(fault.ErrMissingField)
	case string:
		u, err := util.Uint64FromHex(v)
		if nil != err {
			return 0, n.fail(err)
		}
		return u, nil
	case []interface{}:
		return n.words(v)
	default:
		return 0, n.fail(fault.ErrTypeMismatch)
	}
}

// the older schema splits a uint64 into two 32 bit words
func (n Node) words(v []interface{}) (uint64, error) {
	if 2 != len(v) {
		return 0, n.fail(fault.ErrTypeMismatch)
	}
	w := [2]uint32{}
	for i := range w {
		x, ok := v[i].(json.Number)
		if !ok {
			return 0, n.fail(fault.ErrTypeMismatch)
		}
		u, err := strconv.ParseUint(x.String(), 10, 32)
		if nil != err {
			return 0, n.fail(fault.ErrUint64OutOfRange)
		}
		w[i] = uint32(u)
	}
	return util.Uint64FromWords(w[0], w[1]), nil
}

// Int - signed integer within [min, max], numbers or numeric strings
func (n Node) Int(min int64, max int64) (int64, error) {
	var s string
	switch v := n.value.(type) {
	case nil:
		return 0, n.fail(fault.ErrMissingField)
	case json.Number:
		s = v.String()
	case string:
		s = v
	default:
		return 0, n.fail(fault.ErrTypeMismatch)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if nil != err || i < min || i > max {
		return 0, n.fail(fault.ErrUint64OutOfRange)
	}
	return i, nil
}

// Uint8 - small unsigned value
func (n Node) Uint8() (uint8, error) {
	i, err := n.Int(0, 0xff)
	return uint8(i), err
}

// Uint16 - unsigned 16 bit value
func (n Node) Uint16() (uint16, error) {
	i, err := n.Int(0, 0xffff)
	return uint16(i), err
}

// Uint32 - unsigned 32 bit value
func (n Node) Uint32() (uint32, error) {
	i, err := n.Int(0, 0xffffffff)
	return uint32(i), err
}

// Hex - binary data as hex text
func (n Node) Hex() ([]byte, error) {
	s, err := n.Text()
	if nil != err {
		return nil, err
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, n.fail(fault.ErrHexDecode)
	}
	return b, nil
}

// Digest - 32 byte hash as hex
func (n Node) Digest() (merkle.Digest, error) {
	s, err := n.Text()
	if nil != err {
		return merkle.Digest{}, err
	}
	d, err := merkle.DigestFromHex(s)
	if nil != err {
		return merkle.Digest{}, n.fail(fault.ErrInvalidHash)
	}
	return d, nil
}

// PublicKey - 32 byte key as hex
func (n Node) PublicKey() (account.PublicKey, error) {
	s, err := n.Text()
	if nil != err {
		return account.PublicKey{}, err
	}
	k, err := account.PublicKeyFromHex(s)
	if nil != err {
		return account.PublicKey{}, n.fail(err)
	}
	return k, nil
}

// Signature - 64 byte signature as hex
func (n Node) Signature() (account.Signature, error) {
	s, err := n.Text()
	if nil != err {
		return account.Signature{}, err
	}
	sig, err := account.SignatureFromHex(s)
	if nil != err {
		return account.Signature{}, n.fail(err)
	}
	return sig, nil
}

// Address - hex or base32 form
func (n Node) Address() (account.Address, error) {
	s, err := n.Text()
	if nil != err {
		return account.Address{}, err
	}
	a, err := account.AddressFromString(s)
	if nil != err {
		return account.Address{}, n.fail(err)
	}
	return a, nil
}

// Addresses - array of addresses, missing is empty
func (n Node) Addresses() ([]account.Address, error) {
	items, err := n.Array()
	if nil != err {
		return nil, err
	}
	var addresses []account.Address
	for _, item := range items {
		a, err := item.Address()
		if nil != err {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}
