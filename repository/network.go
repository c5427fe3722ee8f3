// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"context"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
)

// REST routes
const (
	propertiesPath = "/network/properties"
	feesPath       = "/network/fees/transaction"
)

// cache keys
const (
	propertiesKey = "properties"
	feesKey       = "fees"
)

// DefaultFeeExpiry - fee multipliers change with every block
const DefaultFeeExpiry = 30 * time.Second

// NetworkProperties - the parameters needed to sign for a network
type NetworkProperties struct {
	Identifier      string
	Network         chain.NetworkType
	GenerationHash  merkle.Digest
	EpochAdjustment time.Duration
	NemesisSigner   string
}

// FeeMultipliers - recent fee multipliers of the network
type FeeMultipliers struct {
	Average uint32
	Median  uint32
	Highest uint32
	Lowest  uint32
	Minimum uint32
}

// NetworkRepository - network parameters of a node
//
// properties do not change for the life of a network and are cached
// without expiry, fees expire
type NetworkRepository struct {
	log       *logger.L
	fetcher   Fetcher
	cache     *cache.Cache
	feeExpiry time.Duration
}

// NewNetworkRepository - create a repository on a transport
func NewNetworkRepository(fetcher Fetcher, feeExpiry time.Duration) *NetworkRepository {
	if feeExpiry <= 0 {
		feeExpiry = DefaultFeeExpiry
	}
	return &NetworkRepository{
		log:       logger.New("repository"),
		fetcher:   fetcher,
		cache:     cache.New(cache.NoExpiration, 2*feeExpiry),
		feeExpiry: feeExpiry,
	}
}

// GetNetworkProperties - network type, generation hash and epoch
func (r *NetworkRepository) GetNetworkProperties(ctx context.Context) (NetworkProperties, error) {
	if p, found := r.cache.Get(propertiesKey); found {
		return p.(NetworkProperties), nil
	}

	data, err := r.fetcher.FetchJSON(ctx, propertiesPath)
	if nil != err {
		return NetworkProperties{}, err
	}
	p, err := parseProperties(data)
	if nil != err {
		r.log.Warnf("network properties: %s", err)
		return NetworkProperties{}, err
	}

	r.log.Infof("network: %s  generation hash: %s", p.Identifier, p.GenerationHash)
	r.cache.Set(propertiesKey, p, cache.NoExpiration)
	return p, nil
}

// GetFeeMultiplier - current fee multipliers
func (r *NetworkRepository) GetFeeMultiplier(ctx context.Context) (FeeMultipliers, error) {
	if f, found := r.cache.Get(feesKey); found {
		return f.(FeeMultipliers), nil
	}

	data, err := r.fetcher.FetchJSON(ctx, feesPath)
	if nil != err {
		return FeeMultipliers{}, err
	}
	f, err := parseFees(data)
	if nil != err {
		r.log.Warnf("fee multipliers: %s", err)
		return FeeMultipliers{}, err
	}

	r.cache.Set(feesKey, f, r.feeExpiry)
	return f, nil
}

// Flush - forget cached values
func (r *NetworkRepository) Flush() {
	r.cache.Flush()
}

// {"network": {identifier, nemesisSignerPublicKey, generationHashSeed,
// epochAdjustment}, "chain": {...}}
func parseProperties(data []byte) (NetworkProperties, error) {
	p := NetworkProperties{}
	root, err := mapping.Parse(data)
	if nil != err {
		return p, err
	}
	n := root.Get("network")

	id := n.Get("identifier")
	if p.Identifier, err = id.Text(); nil != err {
		return p, err
	}
	p.Network, err = chain.NetworkTypeFromName(strings.Replace(p.Identifier, "-", "_", -1))
	if nil != err {
		return p, id.Fail(err)
	}

	if p.GenerationHash, err = n.Get("generationHashSeed").Digest(); nil != err {
		return p, err
	}

	epoch := n.Get("epochAdjustment")
	s, err := epoch.Text()
	if nil != err {
		return p, err
	}
	if p.EpochAdjustment, err = time.ParseDuration(s); nil != err || p.EpochAdjustment < 0 {
		return p, epoch.Fail(fault.ErrInvalidEpoch)
	}

	if n.Has("nemesisSignerPublicKey") {
		if p.NemesisSigner, err = n.Get("nemesisSignerPublicKey").Text(); nil != err {
			return p, err
		}
	}
	return p, nil
}

func parseFees(data []byte) (FeeMultipliers, error) {
	f := FeeMultipliers{}
	n, err := mapping.Parse(data)
	if nil != err {
		return f, err
	}
	fields := []struct {
		name  string
		value *uint32
	}{
		{"averageFeeMultiplier", &f.Average},
		{"medianFeeMultiplier", &f.Median},
		{"highestFeeMultiplier", &f.Highest},
		{"lowestFeeMultiplier", &f.Lowest},
		{"minFeeMultiplier", &f.Minimum},
	}
	for _, field := range fields {
		if *field.value, err = n.Get(field.name).Uint32(); nil != err {
			return FeeMultipliers{}, err
		}
	}
	return f, nil
}
