// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/coffeechain/lotledgerd/fault"
)

// CanonicalHostAndPort - make the Host:Port canonical
//
// IP addresses are normalised, host names are kept as given
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//   name:  ledger.example.com:1234
func CanonicalHostAndPort(hostPort string) (string, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", fault.ErrInvalidIPAddress
	}
	host = strings.TrimSpace(host)

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return "", fault.ErrInvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return "", fault.ErrInvalidPortNumber
	}

	IP := net.ParseIP(host)
	if nil == IP {
		if "" == host || strings.ContainsAny(host, " :*[]") {
			return "", fault.ErrInvalidIPAddress
		}
		return host + ":" + strconv.Itoa(numericPort), nil
	}

	if nil != IP.To4() {
		return IP.String() + ":" + strconv.Itoa(numericPort), nil
	}
	return "[" + IP.String() + "]:" + strconv.Itoa(numericPort), nil
}
