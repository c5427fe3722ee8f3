// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/symbol-sdk-go/configuration"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

type node struct {
	URL  string  `gluamapper:"url"`
	Rate float64 `gluamapper:"rate"`
}

type testConfiguration struct {
	File      string            `gluamapper:"file"`
	Network   string            `gluamapper:"network"`
	Count     int               `gluamapper:"count"`
	Untouched string            `gluamapper:"untouched"`
	Node      node              `gluamapper:"node"`
	Levels    map[string]string `gluamapper:"levels"`
}

const luaConfiguration = `
local M = {}

M.file = arg[0]
M.network = "test"
M.count = 2 + 1

M.node = {
    url = "http://localhost:3000",
    rate = 2.5,
}

M.levels = {
    main = "info",
    DEFAULT = "critical",
}

return M
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write file")
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "test.conf", luaConfiguration)

	c := testConfiguration{
		Untouched: "default",
	}
	err = configuration.ParseConfigurationFile(fileName, &c)
	require.Nil(t, err, "parse")

	assert.Equal(t, fileName, c.File, "arg[0]")
	assert.Equal(t, "test", c.Network, "network")
	assert.Equal(t, 3, c.Count, "count")
	assert.Equal(t, "default", c.Untouched, "default kept")
	assert.Equal(t, node{URL: "http://localhost:3000", Rate: 2.5}, c.Node, "node")
	assert.Equal(t, map[string]string{"main": "info", "DEFAULT": "critical"}, c.Levels, "levels")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	c := testConfiguration{}

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &c)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	fileName := writeFile(t, dir, "value.conf", `return 42`)
	err = configuration.ParseConfigurationFile(fileName, &c)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "not a table")

	fileName = writeFile(t, dir, "syntax.conf", `return {`)
	err = configuration.ParseConfigurationFile(fileName, &c)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(fileName, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")
}
