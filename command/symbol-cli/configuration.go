// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/configuration"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/repository"
	"github.com/bitmark-inc/symbol-sdk-go/storage"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultNetwork       = "test"
	defaultFeeMultiplier = 100
	defaultDatabase      = "symbol-cli.leveldb"
	defaultKeystore      = "symbol-cli.keys"

	defaultLogDirectory = "log"
	defaultLogFile      = "symbol-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// NodeType - REST gateway of a node
type NodeType struct {
	URL          string  `gluamapper:"url" json:"url"`
	RequestRate  float64 `gluamapper:"request_rate" json:"request_rate"`
	RequestBurst int     `gluamapper:"request_burst" json:"request_burst"`
}

// Configuration - contents of symbol-cli.conf
//
// generation hash and epoch adjustment may be left blank, they are
// then read from the node's network properties
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Network         string               `gluamapper:"network" json:"network"`
	Node            NodeType             `gluamapper:"node" json:"node"`
	GenerationHash  string               `gluamapper:"generation_hash" json:"generation_hash"`
	EpochAdjustment int64                `gluamapper:"epoch_adjustment" json:"epoch_adjustment"`
	FeeMultiplier   int                  `gluamapper:"fee_multiplier" json:"fee_multiplier"`
	ExpiryInterval  int                  `gluamapper:"expiry_interval" json:"expiry_interval"`
	Database        string               `gluamapper:"database" json:"database"`
	Keystore        string               `gluamapper:"keystore" json:"keystore"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`

	// values resolved from the above
	networkType    chain.NetworkType
	generationHash *merkle.Digest
	epoch          time.Duration
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Network:       defaultNetwork,

		Node: NodeType{
			RequestRate:  repository.DefaultRequestRate,
			RequestBurst: repository.DefaultRequestBurst,
		},

		FeeMultiplier:  defaultFeeMultiplier,
		ExpiryInterval: int(storage.DefaultExpiryInterval / time.Second),
		Database:       defaultDatabase,
		Keystore:       defaultKeystore,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.networkType, err = chain.NetworkTypeFromName(options.Network)
	if nil != err {
		return nil, fmt.Errorf("network: %q is not supported", options.Network)
	}

	if "" != options.GenerationHash {
		d, err := merkle.DigestFromHex(options.GenerationHash)
		if nil != err {
			return nil, fmt.Errorf("generation hash: %q is invalid", options.GenerationHash)
		}
		options.generationHash = &d
	}
	if options.EpochAdjustment < 0 {
		return nil, fmt.Errorf("epoch adjustment: %d is negative", options.EpochAdjustment)
	}
	options.epoch = time.Duration(options.EpochAdjustment) * time.Second

	if options.FeeMultiplier < 0 {
		options.FeeMultiplier = defaultFeeMultiplier
	}
	if options.Node.RequestRate <= 0 {
		options.Node.RequestRate = repository.DefaultRequestRate
	}
	if options.Node.RequestBurst <= 0 {
		options.Node.RequestBurst = repository.DefaultRequestBurst
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database,
		&options.Keystore,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names
	mustNotBePaths := []*string{
		&options.Logging.File,
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f) {
		case "", ".":
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}
