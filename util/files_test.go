// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/symbol-sdk-go/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/file.db", util.EnsureAbsolute("/data", "file.db"), "relative")
	assert.Equal(t, "/data/sub/file.db", util.EnsureAbsolute("/data", "./sub/../sub/file.db"), "cleaned")
	assert.Equal(t, "/other/file.db", util.EnsureAbsolute("/data", "/other//file.db"), "absolute")

	home, err := os.UserHomeDir()
	if nil == err {
		assert.Equal(t, filepath.Join(home, "keys"), util.EnsureAbsolute("/data", "~/keys"), "home")
	}
}

func TestRegularFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "file")
	assert.False(t, util.RegularFileExists(name), "missing file")

	if err := ioutil.WriteFile(name, []byte("x"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	assert.True(t, util.RegularFileExists(name), "file")
	assert.False(t, util.RegularFileExists(dir), "directory")
}

func TestFormatBytes(t *testing.T) {
	s := util.FormatBytes("x", []byte{0, 1, 2, 3, 4, 5, 6, 7, 0xff})
	expected := "x := []byte{" +
		"\n\t0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, // 0000" +
		"\n\t0xff, // 0008" +
		"\n}"
	assert.Equal(t, expected, s)
	assert.Equal(t, "x := []byte{\n}", util.FormatBytes("x", nil), "empty")
}
