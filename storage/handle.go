// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/fault"
)

// Handle - the operations of a single region
type Handle interface {
	Region() byte
	Name() string
	Get([]byte) []byte
	Has([]byte) bool
	Put([]byte, []byte) error
	LastElement() (Element, bool)
	NewFetchCursor() *FetchCursor
}

// PoolHandle - a region of the store
type PoolHandle struct {
	region byte
	name   string
	limit  []byte
	store  *Store
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Region - the key prefix of this region
func (p *PoolHandle) Region() byte {
	return p.region
}

// Name - the name bound to the region
func (p *PoolHandle) Name() string {
	return p.name
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.region
	return append(prefixedKey, key...)
}

// the full key range of the region
func (p *PoolHandle) keyRange() *ldb_util.Range {
	return &ldb_util.Range{
		Start: []byte{p.region}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}

// Put - store a key/value bytes pair to the database
//
// an existing key is replaced, the write is synchronous so
// the data is durable once this returns
func (p *PoolHandle) Put(key []byte, value []byte) error {
	p.store.RLock()
	defer p.store.RUnlock()

	if nil == p.store.access {
		return fault.ErrNotInitialised
	}
	if p.store.readOnly {
		return leveldb.ErrReadOnly
	}

	err := p.store.access.Put(p.prefixKey(key), value)
	if nil != err {
		p.store.log.Errorf("put region: %q  key: %x  error: %s", p.name, key, err)
	}
	return err
}

// Get - read a value for a given key
//
// returns nil if the key is absent, the result is a private copy
func (p *PoolHandle) Get(key []byte) []byte {
	p.store.RLock()
	defer p.store.RUnlock()

	if nil == p.store.access {
		return nil
	}
	value, err := p.store.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	p.store.RLock()
	defer p.store.RUnlock()

	if nil == p.store.access {
		return false
	}
	value, err := p.store.access.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return value
}

// LastElement - get the element with the highest key in a region
func (p *PoolHandle) LastElement() (Element, bool) {
	p.store.RLock()
	defer p.store.RUnlock()

	if nil == p.store.access {
		return Element{}, false
	}

	iter := p.store.access.Iterator(p.keyRange())

	found := false
	result := Element{}
	if iter.Last() {
		result = makeElement(iter.Key(), iter.Value())
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}

// contents of the iterator slices must not be modified, and are
// only valid until the next call to Next
func makeElement(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
