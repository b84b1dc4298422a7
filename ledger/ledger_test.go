// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/lotrecord"
)

func TestScenario(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	l := env.open(t)

	alice := makeIdentity(t, "alice")
	bob := makeIdentity(t, "bob")

	assert.True(t, l.Register(alice), "register alice")

	id, err := l.CreateLot(alice, "Jane", "2024-01-01", "Farm1")
	assert.Nil(t, err, "create error")
	assert.Equal(t, uint64(0), id, "first lot id")

	err = l.AppendUpdate(alice, 0, "Roasted", "batch 7")
	assert.Nil(t, err, "update error")

	lot, err := l.GetLot(0)
	assert.Nil(t, err, "get error")
	assert.Equal(t, "Roasted", lot.Status, "status")
	assert.Equal(t, 1, len(lot.Updates), "update count")
	assert.Equal(t, "batch 7", lot.Updates[0].Details, "details")
	assert.True(t, alice.Equal(lot.Updates[0].UpdatedBy), "updated by")
	assert.Equal(t, "Jane", lot.Farmer, "farmer")
	assert.Equal(t, "2024-01-01", lot.HarvestDate, "harvest date")
	assert.Equal(t, "Farm1", lot.Location, "location")

	_, err = l.GetLot(1)
	assert.Equal(t, fault.ErrLotNotFound, err, "lot 1 exists")

	_, err = l.CreateLot(bob, "Bob", "2024-02-02", "Farm2")
	assert.Equal(t, fault.ErrUnauthorised, err, "unregistered create")

	lots, err := l.ListLots()
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, len(lots), "lot count")
	assert.Equal(t, uint64(1), l.LotCount(), "counted lots")
}

func TestNewLot(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	l := env.open(t)
	alice := makeIdentity(t, "alice")
	l.Register(alice)

	id, err := l.CreateLot(alice, "Ana", "2024-03-01", "Huila")
	assert.Nil(t, err, "create error")

	lot, err := l.GetLot(id)
	assert.Nil(t, err, "get error")
	assert.Equal(t, lotrecord.InitialStatus, lot.Status, "initial status")
	assert.Equal(t, 0, len(lot.Updates), "initial updates")
	assert.NotEqual(t, uint64(0), lot.Timestamp, "timestamp not set")
}

func TestMonotonicIds(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	l := env.open(t)
	alice := makeIdentity(t, "alice")
	bob := makeIdentity(t, "bob")
	l.Register(alice)

	for i := uint64(0); i < 10; i += 1 {
		id, err := l.CreateLot(alice, "f", "d", "l")
		assert.Nil(t, err, "create error")
		assert.Equal(t, i, id, "lot id")

		// failed creates do not consume ids
		_, err = l.CreateLot(bob, "f", "d", "l")
		assert.Equal(t, fault.ErrUnauthorised, err, "unregistered create")
		_, err = l.CreateLot(alice, strings.Repeat("x", lotrecord.MaxRecordSize), "d", "l")
		assert.Equal(t, fault.ErrRecordTooLarge, err, "oversize create")
	}

	lots, err := l.ListLots()
	assert.Nil(t, err, "list error")
	for i, lot := range lots {
		assert.Equal(t, uint64(i), lot.Id, "listed id")
	}

	// restart continues after the highest id
	l = env.open(t)
	id, err := l.CreateLot(alice, "f", "d", "l")
	assert.Nil(t, err, "create error")
	assert.Equal(t, uint64(10), id, "id after restart")
}

func TestAuthorisationGate(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	l := env.open(t)
	alice := makeIdentity(t, "alice")
	mallory := makeIdentity(t, "mallory")

	assert.False(t, l.IsRegistered(alice), "registered before register")
	assert.True(t, l.Register(alice), "register")
	assert.True(t, l.Register(alice), "register again")
	assert.True(t, l.IsRegistered(alice), "not registered")
	assert.False(t, l.IsRegistered(mallory), "mallory registered")
	assert.False(t, l.IsRegistered(nil), "nil registered")
	assert.False(t, l.Register(nil), "nil register")

	id, err := l.CreateLot(alice, "Ana", "2024-03-01", "Huila")
	assert.Nil(t, err, "create error")

	err = l.AppendUpdate(mallory, id, "Stolen", "")
	assert.Equal(t, fault.ErrUnauthorised, err, "unregistered update")

	_, err = l.CreateLot(nil, "Ana", "2024-03-01", "Huila")
	assert.Equal(t, fault.ErrMissingIdentity, err, "nil create")

	// state is unchanged by the rejected calls
	lot, err := l.GetLot(id)
	assert.Nil(t, err, "get error")
	assert.Equal(t, 0, len(lot.Updates), "updates")
	assert.Equal(t, uint64(1), l.LotCount(), "count")

	// reads need no registration
	lots, err := l.ListLots()
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, len(lots), "listed")
}

func TestStatusMirrorAndAppendOnly(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	l := env.open(t)
	alice := makeIdentity(t, "alice")
	bob := makeIdentity(t, "bob")
	l.Register(alice)
	l.Register(bob)

	id, err := l.CreateLot(alice, "Ana", "2024-03-01", "Huila")
	assert.Nil(t, err, "create error")

	steps := []struct {
		who     string
		status  string
		details string
	}{
		{"alice", "Dried", "sun dried"},
		{"bob", "Hulled", ""},
		{"alice", "Roasted", "medium"},
		{"bob", "Shipped", "container 12"},
	}

	previous := []lotrecord.Update{}
	for i, s := range steps {
		who := alice
		if "bob" == s.who {
			who = bob
		}
		err := l.AppendUpdate(who, id, s.status, s.details)
		assert.Nil(t, err, "update error")

		lot, err := l.GetLot(id)
		assert.Nil(t, err, "get error")
		assert.Equal(t, i+1, len(lot.Updates), "update count")
		assert.Equal(t, s.status, lot.Status, "status mirrors last update")
		assert.Equal(t, lot.Updates[len(lot.Updates)-1].Status, lot.Status, "status mirror")
		assert.True(t, who.Equal(lot.Updates[i].UpdatedBy), "updated by")

		// earlier entries never change
		assert.Equal(t, previous, lot.Updates[:len(previous)], "prefix changed")
		if i > 0 {
			assert.True(t, lot.Updates[i].Timestamp > lot.Updates[i-1].Timestamp, "timestamps not increasing")
		} else {
			assert.True(t, lot.Updates[0].Timestamp > lot.Timestamp, "update before creation")
		}
		previous = lot.Updates

		// provenance is immutable
		assert.Equal(t, "Ana", lot.Farmer, "farmer")
		assert.Equal(t, "Huila", lot.Location, "location")
	}

	err = l.AppendUpdate(alice, 99, "Lost", "")
	assert.Equal(t, fault.ErrLotNotFound, err, "update missing lot")
}

func TestRecordSizeLimit(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	l := env.open(t)
	alice := makeIdentity(t, "alice")
	l.Register(alice)

	id, err := l.CreateLot(alice, "Ana", "2024-03-01", "Huila")
	assert.Nil(t, err, "create error")

	details := strings.Repeat("d", 100)
	accepted := 0
	for {
		err := l.AppendUpdate(alice, id, "Checked", details)
		if nil != err {
			assert.Equal(t, fault.ErrRecordTooLarge, err, "growth error")
			break
		}
		accepted += 1
	}
	assert.True(t, accepted > 0, "no updates accepted")

	// the rejected update left the stored lot unchanged
	lot, err := l.GetLot(id)
	assert.Nil(t, err, "get error")
	assert.Equal(t, accepted, len(lot.Updates), "updates after rejection")

	packed, err := lot.Pack()
	assert.Nil(t, err, "pack error")
	assert.True(t, len(packed) <= lotrecord.MaxRecordSize, "stored size")
}

func TestDurability(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	l := env.open(t)
	alice := makeIdentity(t, "alice")
	l.Register(alice)

	for i := 0; i < 3; i += 1 {
		id, err := l.CreateLot(alice, "Ana", "2024-03-01", "Huila")
		assert.Nil(t, err, "create error")
		err = l.AppendUpdate(alice, id, "Roasted", "light")
		assert.Nil(t, err, "update error")
	}
	before, err := l.ListLots()
	assert.Nil(t, err, "list error")

	// close and reopen the same directory
	l = env.open(t)

	assert.True(t, l.IsRegistered(alice), "registration lost")
	after, err := l.ListLots()
	assert.Nil(t, err, "list error")
	assert.Equal(t, before, after, "lots after restart")
	assert.Equal(t, uint64(3), l.LotCount(), "count after restart")
}

func TestListLotsFrom(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	l := env.open(t)
	alice := makeIdentity(t, "alice")
	l.Register(alice)

	for i := 0; i < 25; i += 1 {
		_, err := l.CreateLot(alice, "f", "d", "l")
		assert.Nil(t, err, "create error")
	}

	start := uint64(0)
	seen := 0
	for {
		lots, next, err := l.ListLotsFrom(start, 10)
		assert.Nil(t, err, "list error")
		if 0 == len(lots) {
			assert.Equal(t, start, next, "empty page moved start")
			break
		}
		for _, lot := range lots {
			assert.Equal(t, uint64(seen), lot.Id, "paged id")
			seen += 1
		}
		start = next
	}
	assert.Equal(t, 25, seen, "paged total")

	_, _, err := l.ListLotsFrom(0, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestConcurrentCreates(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	l := env.open(t)
	alice := makeIdentity(t, "alice")
	l.Register(alice)

	const workers = 8
	const perWorker = 5

	ids := make(chan uint64, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i += 1 {
				id, err := l.CreateLot(alice, "f", "d", "l")
				if nil == err {
					ids <- id
				}
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id: %d", id)
		seen[id] = true
	}
	assert.Equal(t, workers*perWorker, len(seen), "created")
	assert.Equal(t, uint64(workers*perWorker), l.LotCount(), "count")
}
