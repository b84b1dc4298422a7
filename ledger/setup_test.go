// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/identity"
	"github.com/coffeechain/lotledgerd/ledger"
	"github.com/coffeechain/lotledgerd/storage"
)

type testEnvironment struct {
	directory string
	database  string
	store     *storage.Store
}

func setup(t *testing.T) *testEnvironment {
	directory, err := ioutil.TempDir("", "ledger-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}

	logging := logger.Configuration{
		Directory: directory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)

	return &testEnvironment{
		directory: directory,
		database:  filepath.Join(directory, "lots.leveldb"),
	}
}

func (env *testEnvironment) teardown() {
	if nil != env.store {
		env.store.Close()
	}
	logger.Finalise()
	os.RemoveAll(env.directory)
}

// open the store and a ledger over it, closing any previous store
func (env *testEnvironment) open(t *testing.T) *ledger.Ledger {
	if nil != env.store {
		env.store.Close()
	}

	store, err := storage.Open(env.database, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	env.store = store

	l, err := ledger.New(store.Pool.Lots, store.Pool.RegisteredUsers)
	if nil != err {
		t.Fatalf("ledger new error: %s", err)
	}
	return l
}

func makeIdentity(t *testing.T, name string) *identity.Identity {
	id, err := identity.New([]byte(name))
	if nil != err {
		t.Fatalf("identity error: %s", err)
	}
	return id
}
