// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listener

import (
	"strings"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// Channel - the kind of notification a topic delivers
type Channel string

// node channels
const (
	Block              = Channel("block")
	FinalizedBlock     = Channel("finalizedBlock")
	ConfirmedAdded     = Channel("confirmedAdded")
	UnconfirmedAdded   = Channel("unconfirmedAdded")
	UnconfirmedRemoved = Channel("unconfirmedRemoved")
	PartialAdded       = Channel("partialAdded")
	PartialRemoved     = Channel("partialRemoved")
	Cosignature        = Channel("cosignature")
	Status             = Channel("status")
)

// what a channel pushes
type payload int

const (
	blockPayload payload = iota
	finalizedPayload
	transactionPayload
	hashPayload
	cosignaturePayload
	statusPayload
)

type channelInfo struct {
	payload     payload
	perAddress  bool
	description string
}

var channels = map[Channel]channelInfo{
	Block:              {blockPayload, false, "new block"},
	FinalizedBlock:     {finalizedPayload, false, "finalized block"},
	ConfirmedAdded:     {transactionPayload, true, "transaction confirmed"},
	UnconfirmedAdded:   {transactionPayload, true, "transaction entered the unconfirmed pool"},
	UnconfirmedRemoved: {hashPayload, true, "transaction left the unconfirmed pool"},
	PartialAdded:       {transactionPayload, true, "bonded aggregate waiting for cosignatures"},
	PartialRemoved:     {hashPayload, true, "bonded aggregate left the partial pool"},
	Cosignature:        {cosignaturePayload, true, "cosignature added"},
	Status:             {statusPayload, true, "transaction rejected"},
}

// Valid - true for a known channel
func (c Channel) Valid() bool {
	_, ok := channels[c]
	return ok
}

// PerAddress - true if subscriptions name an address
func (c Channel) PerAddress() bool {
	return channels[c].perAddress
}

// Description - human readable purpose
func (c Channel) Description() string {
	return channels[c].description
}

func (c Channel) String() string {
	return string(c)
}

// Topic - subscription name: the channel alone for block channels,
// otherwise <channel>/<plain address>
func Topic(channel Channel, address *account.Address) (string, error) {
	info, ok := channels[channel]
	if !ok {
		return "", fault.ErrInvalidChannel
	}
	if !info.perAddress {
		if nil != address {
			return "", fault.ErrInvalidChannel
		}
		return string(channel), nil
	}
	if nil == address {
		return "", fault.ErrMissingAddress
	}
	if !address.IsValid() {
		return "", fault.ErrInvalidAddress
	}
	return string(channel) + "/" + address.Plain(), nil
}

// ParseTopic - split a topic into its channel and optional address
func ParseTopic(topic string) (Channel, *account.Address, error) {
	parts := strings.SplitN(topic, "/", 2)
	channel := Channel(parts[0])
	info, ok := channels[channel]
	if !ok {
		return "", nil, fault.ErrInvalidChannel
	}
	if 1 == len(parts) {
		return channel, nil, nil
	}
	if !info.perAddress {
		return "", nil, fault.ErrInvalidChannel
	}
	a, err := account.AddressFromString(parts[1])
	if nil != err {
		return "", nil, err
	}
	return channel, &a, nil
}
