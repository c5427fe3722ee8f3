// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"strings"
)

// WireError - a binary decode failure at a known position
type WireError struct {
	Field  string
	Offset int
	Err    error
}

// Wire - wrap a decode error with the field name and byte offset
func Wire(field string, offset int, err error) error {
	if nil == err {
		return nil
	}
	return &WireError{
		Field:  field,
		Offset: offset,
		Err:    err,
	}
}

func (e *WireError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Field, e.Offset, e.Err)
}

func (e *WireError) Unwrap() error { return e.Err }

// MappingError - a JSON mapping failure with the path that was
// being traversed, e.g. transaction.mosaics[0].amount
type MappingError struct {
	Path []string
	Err  error
}

// Mapping - wrap an error with a JSON path
func Mapping(path []string, err error) error {
	if nil == err {
		return nil
	}
	p := make([]string, len(path))
	copy(p, path)
	return &MappingError{
		Path: p,
		Err:  err,
	}
}

// PathString - the dotted form of the path
func (e *MappingError) PathString() string {
	s := strings.Join(e.Path, ".")
	return strings.Replace(s, ".[", "[", -1)
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s: %s", e.PathString(), e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }

// IsErrMapping - true if the error chain contains a MappingError
func IsErrMapping(e error) bool {
	for nil != e {
		if _, ok := e.(*MappingError); ok {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}
