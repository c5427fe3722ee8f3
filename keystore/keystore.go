// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// MinimumPasswordLength - shortest accepted password
const MinimumPasswordLength = 8

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Keystore - named accounts of one network, private keys sealed by a
// per identity password
type Keystore struct {
	Network         string              `json:"network"`
	DefaultIdentity string              `json:"defaultIdentity"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and sealed data
//
// Data and Salt are empty for an identity that can only receive
type Identity struct {
	Description string `json:"description"`
	PublicKey   string `json:"publicKey"`
	Address     string `json:"address"`
	Data        string `json:"data,omitempty"`
	Salt        string `json:"salt,omitempty"`
}

// Entry - public view of one identity
type Entry struct {
	Name        string
	Description string
	Account     account.PublicAccount
	Address     account.Address
	CanSign     bool
}

// New - empty keystore
func New(network chain.NetworkType) (*Keystore, error) {
	if !network.Valid() {
		return nil, fault.ErrInvalidNetworkType
	}
	return &Keystore{
		Network:    network.String(),
		Identities: make(map[string]Identity),
	}, nil
}

// Load - read a keystore file
func Load(filename string) (*Keystore, error) {
	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	data, err := ioutil.ReadFile(filename)
	if nil != err {
		return nil, err
	}

	k := &Keystore{}
	if err := json.Unmarshal(data, k); nil != err {
		return nil, err
	}
	if _, err := k.NetworkType(); nil != err {
		return nil, err
	}
	if nil == k.Identities {
		k.Identities = make(map[string]Identity)
	}
	return k, nil
}

// Save - replace the file, keeping the previous one as a backup
func (k *Keystore) Save(filename string) error {
	data, err := json.MarshalIndent(k, "", "  ")
	if nil != err {
		return err
	}

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	_ = os.Remove(tempFile)
	if err := ioutil.WriteFile(tempFile, data, 0600); nil != err {
		return err
	}

	_ = os.Remove(previousFile)
	if _, err := os.Stat(filename); nil == err {
		if err := os.Link(filename, previousFile); nil != err {
			return err
		}
	}
	return os.Rename(tempFile, filename)
}

// NetworkType - the network all identities belong to
func (k *Keystore) NetworkType() (chain.NetworkType, error) {
	return chain.NetworkTypeFromName(k.Network)
}

// Add - store an account with its private key sealed by password
func (k *Keystore) Add(name string, description string, a *account.Account, password string) error {
	if err := k.checkNew(name, a.Network); nil != err {
		return err
	}
	if len(password) < MinimumPasswordLength {
		return fault.ErrInvalidPassword
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}
	sealed, err := sealData(a.PrivateKey(), secretKey)
	if nil != err {
		return err
	}

	k.Identities[name] = Identity{
		Description: description,
		PublicKey:   a.PublicKey().String(),
		Address:     a.Address().Plain(),
		Data:        sealed,
		Salt:        salt.String(),
	}
	k.setDefault(name)
	return nil
}

// AddPublic - store an account that can only be used as a recipient
// or cosignatory reference
func (k *Keystore) AddPublic(name string, description string, p account.PublicAccount) error {
	if err := k.checkNew(name, p.Network); nil != err {
		return err
	}
	k.Identities[name] = Identity{
		Description: description,
		PublicKey:   p.PublicKey.String(),
		Address:     p.Address().Plain(),
	}
	k.setDefault(name)
	return nil
}

// Unlock - the account of an identity, if the password is right
func (k *Keystore) Unlock(name string, password string) (*account.Account, error) {
	id, network, err := k.identity(name)
	if nil != err {
		return nil, err
	}
	if "" == id.Data {
		return nil, fault.ErrPublicOnly
	}

	salt := new(Salt)
	if err := salt.UnmarshalText([]byte(id.Salt)); nil != err {
		return nil, err
	}
	secretKey, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}
	privateKey, err := openData(id.Data, secretKey)
	if nil != err {
		return nil, err
	}

	kp, err := account.KeyPairFromPrivateKey(privateKey)
	if nil != err {
		return nil, err
	}
	if kp.PublicKey().String() != strings.ToUpper(id.PublicKey) {
		return nil, fault.ErrInvalidPrivateKey
	}
	return &account.Account{KeyPair: kp, Network: network}, nil
}

// Public - the public account of an identity
func (k *Keystore) Public(name string) (account.PublicAccount, error) {
	id, network, err := k.identity(name)
	if nil != err {
		return account.PublicAccount{}, err
	}
	return account.NewPublicAccount(id.PublicKey, network)
}

// List - all identities ordered by name
func (k *Keystore) List() ([]Entry, error) {
	names := make([]string, 0, len(k.Identities))
	for name := range k.Identities {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		p, err := k.Public(name)
		if nil != err {
			return nil, err
		}
		id := k.Identities[name]
		entries = append(entries, Entry{
			Name:        name,
			Description: id.Description,
			Account:     p,
			Address:     p.Address(),
			CanSign:     "" != id.Data,
		})
	}
	return entries, nil
}

func (k *Keystore) identity(name string) (Identity, chain.NetworkType, error) {
	if "" == name {
		name = k.DefaultIdentity
	}
	id, ok := k.Identities[name]
	if !ok {
		return Identity{}, 0, fault.ErrIdentityNotFound
	}
	network, err := k.NetworkType()
	if nil != err {
		return Identity{}, 0, err
	}
	return id, network, nil
}

func (k *Keystore) checkNew(name string, network chain.NetworkType) error {
	if "" == strings.TrimSpace(name) {
		return fault.ErrMissingField
	}
	if _, ok := k.Identities[name]; ok {
		return fault.ErrIdentityExists
	}
	n, err := k.NetworkType()
	if nil != err {
		return err
	}
	if n != network {
		return fault.ErrWrongNetwork
	}
	return nil
}

// the first identity becomes the default
func (k *Keystore) setDefault(name string) {
	if "" == k.DefaultIdentity {
		k.DefaultIdentity = name
	}
}
