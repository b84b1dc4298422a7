// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/ledger"
	"github.com/coffeechain/lotledgerd/lotrecord"
	"github.com/coffeechain/lotledgerd/storage"
	"github.com/coffeechain/lotledgerd/storage/mocks"
)

func registered(t *testing.T) []byte {
	packed, err := (&lotrecord.Registration{Registered: true}).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return packed
}

func TestCorruptLotRecord(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lots := mocks.NewMockHandle(ctl)
	users := mocks.NewMockHandle(ctl)

	lots.EXPECT().LastElement().Return(storage.Element{Key: lotrecord.LotKey(4), Value: []byte{0x01}}, true).Times(1)

	l, err := ledger.New(lots, users)
	assert.Nil(t, err, "new error")
	assert.Equal(t, uint64(5), l.LotCount(), "rebuilt count")

	alice := makeIdentity(t, "alice")

	// truncated record
	lots.EXPECT().Get(lotrecord.LotKey(4)).Return([]byte{0x01, 0x04, 0x03}).Times(1)
	_, err = l.GetLot(4)
	assert.Equal(t, fault.ErrCorruptRecord, err, "truncated lot")

	// record stored under the wrong key
	other, err := (&lotrecord.CoffeeLot{Id: 9, Updates: []lotrecord.Update{}}).Pack()
	assert.Nil(t, err, "pack error")
	lots.EXPECT().Get(lotrecord.LotKey(3)).Return([]byte(other)).Times(1)
	_, err = l.GetLot(3)
	assert.Equal(t, fault.ErrCorruptRecord, err, "mismatched id")

	// an update over a corrupt record writes nothing
	users.EXPECT().Get(alice.Bytes()).Return(registered(t)).Times(1)
	lots.EXPECT().Get(lotrecord.LotKey(2)).Return([]byte{0x7f}).Times(1)
	lots.EXPECT().Put(gomock.Any(), gomock.Any()).Times(0)
	err = l.AppendUpdate(alice, 2, "Roasted", "")
	assert.Equal(t, fault.ErrUnknownRecordTag, err, "unknown tag")

	// corrupt registration denies access
	users.EXPECT().Get(alice.Bytes()).Return([]byte{0x03, 0x05}).Times(1)
	assert.False(t, l.IsRegistered(alice), "corrupt registration")
}

func TestCorruptLastKey(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lots := mocks.NewMockHandle(ctl)
	users := mocks.NewMockHandle(ctl)

	lots.EXPECT().LastElement().Return(storage.Element{Key: []byte{1, 2, 3}}, true).Times(1)

	_, err := ledger.New(lots, users)
	assert.Equal(t, fault.ErrCorruptRecord, err, "short key")
}

func TestIdentifierOverflow(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lots := mocks.NewMockHandle(ctl)
	users := mocks.NewMockHandle(ctl)

	alice := makeIdentity(t, "alice")
	users.EXPECT().Get(alice.Bytes()).Return(registered(t)).AnyTimes()

	// the last possible id is in use
	lots.EXPECT().LastElement().Return(storage.Element{Key: lotrecord.LotKey(^uint64(0))}, true).Times(1)

	l, err := ledger.New(lots, users)
	assert.Nil(t, err, "new error")

	lots.EXPECT().Put(gomock.Any(), gomock.Any()).Times(0)
	_, err = l.CreateLot(alice, "f", "d", "l")
	assert.Equal(t, fault.ErrIdentifierOverflow, err, "overflow")
}

func TestLastIdentifierIsUsable(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lots := mocks.NewMockHandle(ctl)
	users := mocks.NewMockHandle(ctl)

	alice := makeIdentity(t, "alice")
	users.EXPECT().Get(alice.Bytes()).Return(registered(t)).AnyTimes()

	last := ^uint64(0)
	lots.EXPECT().LastElement().Return(storage.Element{Key: lotrecord.LotKey(last - 1)}, true).Times(1)

	l, err := ledger.New(lots, users)
	assert.Nil(t, err, "new error")

	lots.EXPECT().Put(lotrecord.LotKey(last), gomock.Any()).Return(nil).Times(1)
	id, err := l.CreateLot(alice, "f", "d", "l")
	assert.Nil(t, err, "create error")
	assert.Equal(t, last, id, "last id")

	_, err = l.CreateLot(alice, "f", "d", "l")
	assert.Equal(t, fault.ErrIdentifierOverflow, err, "after last id")
}

func TestStorageWriteFailure(t *testing.T) {
	env := setup(t)
	defer env.teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lots := mocks.NewMockHandle(ctl)
	users := mocks.NewMockHandle(ctl)

	alice := makeIdentity(t, "alice")
	users.EXPECT().Get(alice.Bytes()).Return(registered(t)).AnyTimes()
	lots.EXPECT().LastElement().Return(storage.Element{}, false).Times(1)

	l, err := ledger.New(lots, users)
	assert.Nil(t, err, "new error")

	gomock.InOrder(
		lots.EXPECT().Put(lotrecord.LotKey(0), gomock.Any()).Return(leveldb.ErrClosed).Times(1),
		lots.EXPECT().Put(lotrecord.LotKey(0), gomock.Any()).Return(nil).Times(1),
	)

	_, err = l.CreateLot(alice, "f", "d", "l")
	assert.Equal(t, leveldb.ErrClosed, err, "write failure")

	// the failed write did not consume the id
	id, err := l.CreateLot(alice, "f", "d", "l")
	assert.Nil(t, err, "create error")
	assert.Equal(t, uint64(0), id, "id reused after failure")

	users.EXPECT().Put(alice.Bytes(), gomock.Any()).Return(leveldb.ErrClosed).Times(1)
	assert.False(t, l.Register(alice), "register on failing store")
}
