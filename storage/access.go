// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - raw database operations on fully prefixed keys
type Access interface {
	Compact(*ldb_util.Range) error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte) error
}

type accessData struct {
	db    *leveldb.DB
	cache Cache
}

// every put is flushed to stable storage before returning
var syncWrite = &ldb_opt.WriteOptions{
	Sync: true,
}

func newDA(db *leveldb.DB, cache Cache) Access {
	return &accessData{
		db:    db,
		cache: cache,
	}
}

func (d *accessData) Put(key []byte, value []byte) error {
	err := d.db.Put(key, value, syncWrite)
	if nil != err {
		return err
	}
	d.cache.Set(string(key), value)
	return nil
}

// Get - returns leveldb.ErrNotFound if key is absent
func (d *accessData) Get(key []byte) ([]byte, error) {
	value, found := d.cache.Get(string(key))
	if found {
		return value, nil
	}

	value, err := d.db.Get(key, nil)
	if nil != err {
		return nil, err
	}
	d.cache.Set(string(key), value)
	return value, nil
}

func (d *accessData) Has(key []byte) (bool, error) {
	if _, found := d.cache.Get(string(key)); found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessData) Compact(searchRange *ldb_util.Range) error {
	return d.db.CompactRange(*searchRange)
}
