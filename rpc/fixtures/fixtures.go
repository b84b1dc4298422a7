// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc package tests
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/identity"
)

// LogCategory - logger channel for tests
const LogCategory = "testing"

var dir string

// SetupTestLogger - start a critical only logger in a fresh directory
func SetupTestLogger() {
	removeFiles()

	d, err := ioutil.TempDir("", "rpc-test")
	if nil != err {
		panic(fmt.Sprintf("temporary directory error: %s", err))
	}
	dir = d

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	if "" == dir {
		return
	}
	_ = os.RemoveAll(dir)
	dir = ""
}

// CertificatePair - a fresh self signed PEM certificate and key
func CertificatePair() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("lotledgerd test", time.Now().Add(time.Hour), false, nil)
	if nil != err {
		panic(fmt.Sprintf("certificate generation error: %s", err))
	}
	return string(cert), string(key)
}

// Identity - an identity built from a fixed string
func Identity(name string) *identity.Identity {
	id, err := identity.New([]byte(name))
	if nil != err {
		panic(fmt.Sprintf("identity error: %s", err))
	}
	return id
}
