// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listener

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type subscription struct {
	UID         string `json:"uid"`
	Subscribe   string `json:"subscribe,omitempty"`
	Unsubscribe string `json:"unsubscribe,omitempty"`
}

// SubscribeMessage - request to start receiving a topic
func SubscribeMessage(uid string, topic string) ([]byte, error) {
	if err := checkRequest(uid, topic); nil != err {
		return nil, err
	}
	return json.Marshal(subscription{UID: uid, Subscribe: topic})
}

// UnsubscribeMessage - request to stop receiving a topic
func UnsubscribeMessage(uid string, topic string) ([]byte, error) {
	if err := checkRequest(uid, topic); nil != err {
		return nil, err
	}
	return json.Marshal(subscription{UID: uid, Unsubscribe: topic})
}

func checkRequest(uid string, topic string) error {
	if "" == uid {
		return fault.ErrNotConnected
	}
	if _, _, err := ParseTopic(topic); nil != err {
		return err
	}
	return nil
}

// ParseHandshake - the connection id sent by the node as the first
// message after connecting
func ParseHandshake(data []byte) (string, error) {
	n, err := mapping.Parse(data)
	if nil != err {
		return "", err
	}
	uid, err := n.Get("uid").Text()
	if nil != err {
		return "", err
	}
	if "" == uid {
		return "", n.Get("uid").Fail(fault.ErrMissingField)
	}
	return uid, nil
}
