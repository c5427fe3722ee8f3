// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/catbuffer"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/keystore"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/repository"
	"github.com/bitmark-inc/symbol-sdk-go/storage"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

const (
	defaultDeadline = transaction.DefaultDeadlineDuration
	requestTimeout  = 30 * time.Second
)

var serializer = catbuffer.Serializer{}

func (m *metadata) requireConfig() (*Configuration, error) {
	if nil == m.config {
		return nil, ErrRequiredConfigFile
	}
	return m.config, nil
}

// the --network flag, then the configuration
func (m *metadata) networkType(c *cli.Context) (chain.NetworkType, error) {
	if name := c.GlobalString("network"); "" != name {
		return chain.NetworkTypeFromName(name)
	}
	if nil != m.config {
		return m.config.networkType, nil
	}
	return 0, ErrRequiredNetwork
}

func (m *metadata) networkRepository() (*repository.NetworkRepository, error) {
	f, err := m.fetcher()
	if nil != err {
		return nil, err
	}
	return repository.NewNetworkRepository(f, repository.DefaultFeeExpiry), nil
}

func (m *metadata) transactionRepository() (*repository.TransactionRepository, error) {
	f, err := m.fetcher()
	if nil != err {
		return nil, err
	}
	return repository.NewTransactionRepository(f), nil
}

func (m *metadata) lockRepository() (*repository.LockRepository, error) {
	f, err := m.fetcher()
	if nil != err {
		return nil, err
	}
	return repository.NewLockRepository(f), nil
}

func (m *metadata) fetcher() (repository.Fetcher, error) {
	config, err := m.requireConfig()
	if nil != err {
		return nil, err
	}
	if "" == config.Node.URL {
		return nil, ErrRequiredNodeURL
	}
	return repository.NewHTTPFetcher(config.Node.URL, config.Node.RequestRate, config.Node.RequestBurst), nil
}

// the --generation-hash flag, then the configuration, then the node
func (m *metadata) generationHash(ctx context.Context, c *cli.Context) (merkle.Digest, error) {
	if s := c.GlobalString("generation-hash"); "" != s {
		d, err := merkle.DigestFromHex(s)
		if nil != err {
			return merkle.Digest{}, fault.ErrInvalidGenerationHash
		}
		return d, nil
	}
	if nil != m.config && nil != m.config.generationHash {
		return *m.config.generationHash, nil
	}
	p, err := m.networkProperties(ctx)
	if nil != err {
		return merkle.Digest{}, err
	}
	return p.GenerationHash, nil
}

// the configuration, then the node, then the main network value
func (m *metadata) epochAdjustment(ctx context.Context) (time.Duration, error) {
	if nil != m.config && 0 != m.config.epoch {
		return m.config.epoch, nil
	}
	if nil == m.config || "" == m.config.Node.URL {
		return transaction.DefaultEpochAdjustment, nil
	}
	p, err := m.networkProperties(ctx)
	if nil != err {
		return 0, err
	}
	return p.EpochAdjustment, nil
}

func (m *metadata) networkProperties(ctx context.Context) (repository.NetworkProperties, error) {
	r, err := m.networkRepository()
	if nil != err {
		return repository.NetworkProperties{}, err
	}
	p, err := r.GetNetworkProperties(ctx)
	if nil != err {
		return repository.NetworkProperties{}, err
	}
	if nil != m.config && p.Network != m.config.networkType {
		return repository.NetworkProperties{}, fault.ErrWrongNetwork
	}
	return p, nil
}

// the keystore named by the configuration; a missing file gives an
// empty keystore when create is set
func (m *metadata) keystore(network chain.NetworkType, create bool) (*keystore.Keystore, error) {
	config, err := m.requireConfig()
	if nil != err {
		return nil, err
	}
	ks, err := keystore.Load(config.Keystore)
	if nil == err {
		return ks, nil
	}
	if !os.IsNotExist(err) || !create {
		return nil, err
	}
	return keystore.New(network)
}

// the private key of the selected identity
func (m *metadata) unlock(c *cli.Context) (*account.Account, error) {
	network, err := m.networkType(c)
	if nil != err {
		return nil, err
	}
	ks, err := m.keystore(network, false)
	if nil != err {
		return nil, err
	}
	if n, err := ks.NetworkType(); nil != err {
		return nil, err
	} else if n != network {
		return nil, fault.ErrWrongNetwork
	}

	name := c.GlobalString("identity")
	if "" == name {
		name = ks.DefaultIdentity
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword(name)
		if nil != err {
			return nil, err
		}
	}
	return ks.Unlock(name, password)
}

// a keystore identity name or an address in any form
func (m *metadata) recipient(c *cli.Context, network chain.NetworkType, s string) (account.Address, error) {
	if "" == s {
		return account.Address{}, ErrRequiredRecipient
	}
	if a, err := account.AddressFromString(s); nil == err {
		if a.NetworkType() != network {
			return account.Address{}, fault.ErrWrongNetwork
		}
		return a, nil
	}
	ks, err := m.keystore(network, false)
	if nil != err {
		return account.Address{}, err
	}
	p, err := ks.Public(s)
	if nil != err {
		return account.Address{}, err
	}
	return p.Address(), nil
}

// open the local store, the caller must call storage.Finalise
func (m *metadata) openStorage(readOnly bool) error {
	config, err := m.requireConfig()
	if nil != err {
		return err
	}
	return storage.Initialise(config.Database, readOnly)
}

func checkPayload(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, ErrRequiredPayload
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrHexDecode
	}
	return b, nil
}

func checkHash(s string) (merkle.Digest, error) {
	if "" == s {
		return merkle.Digest{}, ErrRequiredHash
	}
	d, err := merkle.DigestFromHex(strings.TrimSpace(s))
	if nil != err {
		return merkle.Digest{}, fault.ErrInvalidHash
	}
	return d, nil
}

// contents of a file, or stdin for "-"
func readFile(name string) ([]byte, error) {
	if "" == name {
		return nil, ErrRequiredFileName
	}
	if "-" == name {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(name)
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
