// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coffeechain/lotledgerd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/lotledgerd/rpc.crt", util.EnsureAbsolute("/var/lib/lotledgerd", "rpc.crt"), "relative")
	assert.Equal(t, "/etc/rpc.crt", util.EnsureAbsolute("/var/lib/lotledgerd", "/etc/rpc.crt"), "absolute")
	assert.Equal(t, "/var/lib/data", util.EnsureAbsolute("/var/lib/lotledgerd", "../data/"), "cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "paths")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	_ = ioutil.WriteFile(name, []byte("x"), 0600)

	assert.True(t, util.EnsureFileExists(name), "present file")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "absent")), "absent file")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "paths")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "file")
	_ = ioutil.WriteFile(name, []byte("x"), 0600)

	assert.Nil(t, util.EnsureDirectory(dir), "directory")
	assert.NotNil(t, util.EnsureDirectory(name), "plain file")
	assert.NotNil(t, util.EnsureDirectory(filepath.Join(dir, "absent")), "absent")
}

func TestPlainFileName(t *testing.T) {
	name, err := util.PlainFileName("/var/lib/lotledgerd", "lots.leveldb")
	assert.Nil(t, err, "plain name")
	assert.Equal(t, "/var/lib/lotledgerd/lots.leveldb", name, "joined")

	name, err = util.PlainFileName("", "lotledgerd.log")
	assert.Nil(t, err, "no directory")
	assert.Equal(t, "lotledgerd.log", name, "unchanged")

	_, err = util.PlainFileName("/var/lib/lotledgerd", "sub/lots.leveldb")
	assert.NotNil(t, err, "path accepted")
}
