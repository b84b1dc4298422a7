// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/identity"
	"github.com/coffeechain/lotledgerd/lotrecord"
	"github.com/coffeechain/lotledgerd/storage"
)

// the set of identities allowed to mutate lots
//
// membership is the presence of a registration record, there is no
// removal
type gate struct {
	log   *logger.L
	users storage.Handle
}

func (g *gate) register(who *identity.Identity) error {
	if nil == who {
		return fault.ErrMissingIdentity
	}

	packed, err := (&lotrecord.Registration{Registered: true}).Pack()
	if nil != err {
		return err
	}
	return g.users.Put(who.Bytes(), packed)
}

func (g *gate) isRegistered(who *identity.Identity) bool {
	if nil == who {
		return false
	}

	packed := g.users.Get(who.Bytes())
	if nil == packed {
		return false
	}

	registration, err := lotrecord.Packed(packed).UnpackRegistration()
	if nil != err {
		g.log.Errorf("registration for: %s  error: %s", who, err)
		return false
	}
	return registration.Registered
}

// fail unless the identity is registered
func (g *gate) authorise(who *identity.Identity) error {
	if nil == who {
		return fault.ErrMissingIdentity
	}
	if !g.isRegistered(who) {
		return fault.ErrUnauthorised
	}
	return nil
}
