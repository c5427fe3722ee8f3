// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namespace

import (
	"encoding/binary"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

// limits on names
const (
	MaxNameLength = 64
	MaxDepth      = 3
)

// ID - namespace identifier, always has the high bit set
type ID uint64

// the high bit distinguishes namespace ids from mosaic ids
const namespaceFlag = uint64(1) << 63

// RegistrationType - root or child namespace
type RegistrationType uint8

// registration types
const (
	Root  = RegistrationType(0)
	Child = RegistrationType(1)
)

// AliasAction - link or unlink an alias
type AliasAction uint8

// alias actions
const (
	Unlink = AliasAction(0)
	Link   = AliasAction(1)
)

// RegistrationTypeFromRaw - validate a wire value
func RegistrationTypeFromRaw(b uint8) (RegistrationType, error) {
	if b > uint8(Child) {
		return 0, fault.ErrInvalidRegistrationType
	}
	return RegistrationType(b), nil
}

// AliasActionFromRaw - validate a wire value
func AliasActionFromRaw(b uint8) (AliasAction, error) {
	if b > uint8(Link) {
		return 0, fault.ErrInvalidAliasAction
	}
	return AliasAction(b), nil
}

// ValidateName - a single path element
//
// lower case letters, digits, hyphen and underscore; must start with
// a letter or digit
func ValidateName(name string) error {
	if 0 == len(name) || len(name) > MaxNameLength {
		return fault.ErrInvalidNamespaceName
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case (c == '-' || c == '_') && i > 0:
		default:
			return fault.ErrInvalidNamespaceName
		}
	}
	return nil
}

// IDFromName - derive the id of a name under a parent (zero for a root)
func IDFromName(name string, parent ID) (ID, error) {
	if err := ValidateName(name); nil != err {
		return 0, err
	}
	return generate(name, parent), nil
}

// GenerateIDs - ids of every level of a dotted path, root first
func GenerateIDs(path string) ([]ID, error) {
	parts := strings.Split(path, ".")
	if len(parts) > MaxDepth {
		return nil, fault.ErrInvalidNamespaceName
	}
	ids := make([]ID, 0, len(parts))
	parent := ID(0)
	for _, name := range parts {
		id, err := IDFromName(name, parent)
		if nil != err {
			return nil, err
		}
		ids = append(ids, id)
		parent = id
	}
	return ids, nil
}

// IDFromPath - id of the last element of a dotted path
func IDFromPath(path string) (ID, error) {
	ids, err := GenerateIDs(path)
	if nil != err {
		return 0, err
	}
	return ids[len(ids)-1], nil
}

// SHA3-256(parent lo ‖ parent hi ‖ name), first 8 bytes with the
// namespace flag
func generate(name string, parent ID) ID {
	buffer := make([]byte, 8, 8+len(name))
	binary.LittleEndian.PutUint64(buffer, uint64(parent))
	buffer = append(buffer, name...)
	h := sha3.Sum256(buffer)
	return ID(binary.LittleEndian.Uint64(h[:8]) | namespaceFlag)
}

// IsNamespace - true if a raw id refers to a namespace
func IsNamespace(id uint64) bool {
	return 0 != id&namespaceFlag
}

// Uint64 - raw value
func (id ID) Uint64() uint64 {
	return uint64(id)
}

// String - hex as used by REST
func (id ID) String() string {
	return util.Uint64ToHex(uint64(id))
}
