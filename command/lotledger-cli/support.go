// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/coffeechain/lotledgerd/command/lotledger-cli/rpccalls"
	"github.com/coffeechain/lotledgerd/identity"
	"github.com/coffeechain/lotledgerd/util"
)

// the identity given by the global flag
func callerIdentity(m *metadata) (*identity.Identity, error) {
	s := strings.TrimSpace(m.identity)
	if "" == s {
		return nil, fmt.Errorf("identity is required")
	}
	return identity.FromBase58(s)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	hostPort, err := util.CanonicalHostAndPort(m.connect)
	if nil != err {
		return nil, fmt.Errorf("connect: %q  error: %s", m.connect, err)
	}
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", hostPort)
	}
	return rpccalls.NewClient(hostPort, m.verbose, m.e)
}

func checkRequired(name string, value string) (string, error) {
	value = strings.TrimSpace(value)
	if "" == value {
		return "", fmt.Errorf("%s is required", name)
	}
	return value, nil
}
