// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/util"
)

// Test address conversion
func TestCanonical(t *testing.T) {

	testData := []struct {
		in  string
		out string
	}{
		{"127.0.0.1:1234", "127.0.0.1:1234"},
		{"127.0.0.1:1", "127.0.0.1:1"},
		{" 127.0.0.1:1 ", "127.0.0.1:1"},
		{"127.0.0.1:65535", "127.0.0.1:65535"},
		{"0.0.0.0:1234", "0.0.0.0:1234"},
		{"[::1]:1234", "[::1]:1234"},
		{"[::]:1234", "[::]:1234"},
		{"[0:0::0:0]:1234", "[::]:1234"},
		{"[0:0:0:0::1]:1234", "[::1]:1234"},
		{"localhost:2130", "localhost:2130"},
		{"ledger.example.com:01234", "ledger.example.com:1234"},
	}

	for i, d := range testData {
		c, err := util.CanonicalHostAndPort(d.in)
		if nil != err {
			t.Errorf("failed on:[%d] %q  err = %v", i, d.in, err)
			continue
		}
		if d.out != c {
			t.Errorf("converted:[%d]: %q  to: %q  expected: %q", i, d.in, c, d.out)
		}
	}
}

// Test invalid addresses
func TestCanonicalIP(t *testing.T) {

	testData := []string{
		"127.0.0.1",
		"[as34::]:1234",
		"[1ffff::]:1234",
		"*:1234",
		":1234",
		"[]:1234",
	}

	for i, d := range testData {
		c, err := util.CanonicalHostAndPort(d)
		if fault.ErrInvalidIPAddress != err {
			t.Errorf("failed on:[%d] %q  result: %q  err = %v", i, d, c, err)
		}
	}
}

// Test port range
func TestCanonicalPort(t *testing.T) {

	testData := []string{
		"127.0.0.1:0",
		"127.0.0.1:65536",
		"[::1]:-1",
		"localhost:port",
	}

	for i, d := range testData {
		c, err := util.CanonicalHostAndPort(d)
		if fault.ErrInvalidPortNumber != err {
			t.Errorf("failed on:[%d] %q  result: %q  err = %v", i, d, c, err)
		}
	}
}
