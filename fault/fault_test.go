// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

var (
	ErrExistsOne    = fault.ExistsError("exists one ")
	ErrExistsTwo    = fault.ExistsError("exists two")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrInvalidTwo   = fault.InvalidError("invalid two")
	ErrMalformedOne = fault.MalformedError("malformed one")
	ErrMalformedTwo = fault.MalformedError("malformed two")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrNotFoundTwo  = fault.NotFoundError("not found two")
	ErrProcessOne   = fault.ProcessError("process one")
	ErrProcessTwo   = fault.ProcessError("process two")
	ErrStateOne     = fault.StateError("state one")
	ErrStateTwo     = fault.StateError("state two")
)

// test that the various errors can be classified
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		exists    bool
		invalid   bool
		malformed bool
		notFound  bool
		process   bool
		state     bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrMalformedOne, false, false, true, false, false, false},
		{ErrMalformedTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, true, false},
		{ErrStateOne, false, false, false, false, false, true},
		{ErrStateTwo, false, false, false, false, false, true},
		{fault.Wire("size", 4, ErrMalformedOne), false, false, true, false, false, false},
		{fault.Mapping([]string{"transaction", "type"}, ErrInvalidTwo), false, true, false, false, false, false},
		{fmt.Errorf("wrapped: %w", ErrStateTwo), false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrMalformed(err) != e.malformed {
			t.Errorf("%d: expected 'malformed' == %v for err = %v", i, e.malformed, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrState(err) != e.state {
			t.Errorf("%d: expected 'state' == %v for err = %v", i, e.state, err)
		}
	}
}

func TestWireError(t *testing.T) {
	err := fault.Wire("signer", 72, fault.ErrTruncated)
	assert.Equal(t, "signer at offset 72: buffer truncated", err.Error(), "wrong message")
	assert.Nil(t, fault.Wire("signer", 72, nil), "nil error should stay nil")
}

func TestMappingErrorPath(t *testing.T) {
	path := []string{"transaction", "mosaics", "[0]", "amount"}
	err := fault.Mapping(path, fault.ErrMissingField)
	path[0] = "changed"

	assert.True(t, fault.IsErrMapping(err), "not a mapping error")
	assert.True(t, fault.IsErrMapping(fmt.Errorf("outer: %w", err)), "wrapped mapping error not found")
	assert.False(t, fault.IsErrMapping(fault.ErrMissingField), "plain error reported as mapping")

	m := err.(*fault.MappingError)
	assert.Equal(t, "transaction.mosaics[0].amount", m.PathString(), "wrong path")
	assert.Equal(t, "mapping transaction.mosaics[0].amount: required field is missing", err.Error(), "wrong message")
}
