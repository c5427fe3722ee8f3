// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/repository"
)

const testGenerationHash = "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6"

const fullConfiguration = `
local M = {}

M.data_directory = "."
M.network = "private_test"

M.node = {
    url = "http://localhost:3000",
    request_rate = 5,
    request_burst = 8,
}

M.generation_hash = "` + testGenerationHash + `"
M.epoch_adjustment = 1573430400
M.fee_multiplier = 200
M.keystore = "keys.json"

M.logging = {
    size = 1048576,
    count = 5,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

const minimalConfiguration = `
return {
    data_directory = ".",
}
`

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "symbol-cli")
	require.Nil(t, err, "temp dir")
	fileName := filepath.Join(dir, "symbol-cli.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write configuration")
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, fullConfiguration)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "get configuration")

	dir, _ = filepath.Abs(dir)
	dir = filepath.Clean(dir)

	assert.Equal(t, dir, c.DataDirectory, "data directory")
	assert.Equal(t, chain.PrivateTest, c.networkType, "network")
	assert.Equal(t, "http://localhost:3000", c.Node.URL, "node url")
	assert.Equal(t, 5.0, c.Node.RequestRate, "request rate")
	assert.Equal(t, 8, c.Node.RequestBurst, "request burst")
	require.NotNil(t, c.generationHash, "generation hash")
	assert.Equal(t, testGenerationHash, c.generationHash.String(), "generation hash")
	assert.Equal(t, 1573430400*time.Second, c.epoch, "epoch")
	assert.Equal(t, 200, c.FeeMultiplier, "fee multiplier")
	assert.Equal(t, filepath.Join(dir, "keys.json"), c.Keystore, "keystore")
	assert.Equal(t, filepath.Join(dir, defaultDatabase), c.Database, "database")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")
	assert.Equal(t, 5, c.Logging.Count, "log count")
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"], "log level")

	info, err := os.Stat(c.Logging.Directory)
	require.Nil(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory")
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, minimalConfiguration)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "get configuration")

	assert.Equal(t, chain.TestNet, c.networkType, "network")
	assert.Nil(t, c.generationHash, "generation hash")
	assert.Equal(t, time.Duration(0), c.epoch, "epoch")
	assert.Equal(t, defaultFeeMultiplier, c.FeeMultiplier, "fee multiplier")
	assert.Equal(t, float64(repository.DefaultRequestRate), c.Node.RequestRate, "request rate")
	assert.Equal(t, repository.DefaultRequestBurst, c.Node.RequestBurst, "request burst")
	assert.Equal(t, 60, c.ExpiryInterval, "expiry interval")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		name    string
		content string
	}{
		{"network", `return { data_directory = ".", network = "nowhere" }`},
		{"generation hash", `return { data_directory = ".", generation_hash = "1234" }`},
		{"epoch", `return { data_directory = ".", epoch_adjustment = -1 }`},
		{"data directory", `return { data_directory = "" }`},
		{"missing directory", `return { data_directory = "/nonexistent/symbol-cli" }`},
		{"log file path", `return { data_directory = ".", logging = { file = "x/y.log" } }`},
	}

	for _, item := range items {
		dir, fileName := writeConfiguration(t, item.content)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, item.name)
		os.RemoveAll(dir)
	}
}
