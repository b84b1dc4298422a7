// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/coffeechain/lotledgerd/identity"
)

// KeyPair - generated keys with the identity derived from the public key
type KeyPair struct {
	Identity   string `json:"identity"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

func makeKeyPair(random io.Reader) (*KeyPair, error) {
	if nil == random {
		random = rand.Reader
	}

	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}

	id, err := identity.New(publicKey)
	if nil != err {
		return nil, err
	}

	return &KeyPair{
		Identity:   id.String(),
		PublicKey:  hex.EncodeToString(publicKey),
		PrivateKey: hex.EncodeToString(privateKey),
	}, nil
}
