// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/storage"
)

// common test setup routines

type testEnvironment struct {
	directory string
	database  string
}

// configure for testing
func setup(t *testing.T) *testEnvironment {
	directory, err := ioutil.TempDir("", "storage-test")
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
		database:  filepath.Join(directory, "test.leveldb"),
	}
}

// post test cleanup
func (env *testEnvironment) teardown() {
	logger.Finalise()
	os.RemoveAll(env.directory)
}

func (env *testEnvironment) open(t *testing.T, readOnly bool) *storage.Store {
	store, err := storage.Open(env.database, readOnly)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return store
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// a key that must not exist
var nonExistentKey = []byte("/nonexistent")
