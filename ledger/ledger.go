// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/gnomon"
	"github.com/coffeechain/lotledgerd/identity"
	"github.com/coffeechain/lotledgerd/lotrecord"
	"github.com/coffeechain/lotledgerd/storage"
)

// Ledger - the lot service
type Ledger struct {
	sync.Mutex

	log  *logger.L
	lots storage.Handle
	gate gate
	ids  *allocator
}

// New - create a ledger over the lots and registered users regions
//
// the id allocator is rebuilt from the stored lots
func New(lots storage.Handle, users storage.Handle) (*Ledger, error) {
	log := logger.New("ledger")

	ids, err := newAllocator(lots)
	if nil != err {
		log.Criticalf("rebuild lot id allocator error: %s", err)
		return nil, err
	}

	log.Infof("next lot id: %d", ids.used())

	return &Ledger{
		log:  log,
		lots: lots,
		gate: gate{
			log:   log,
			users: users,
		},
		ids: ids,
	}, nil
}

// nanoseconds since the Unix epoch, strictly increasing
func (l *Ledger) now() uint64 {
	return gnomon.NewCursor().UnixNano()
}

// Register - add an identity to the set allowed to mutate lots
//
// registering an already registered identity succeeds
func (l *Ledger) Register(who *identity.Identity) bool {
	l.Lock()
	defer l.Unlock()

	err := l.gate.register(who)
	if nil != err {
		l.log.Errorf("register: %v  error: %s", who, err)
		return false
	}
	l.log.Infof("registered: %s", who)
	return true
}

// IsRegistered - check membership of the registered set
func (l *Ledger) IsRegistered(who *identity.Identity) bool {
	l.Lock()
	defer l.Unlock()

	return l.gate.isRegistered(who)
}

// CreateLot - store a new lot and return its id
func (l *Ledger) CreateLot(who *identity.Identity, farmer string, harvestDate string, location string) (uint64, error) {
	l.Lock()
	defer l.Unlock()

	err := l.gate.authorise(who)
	if nil != err {
		l.log.Warnf("create lot by: %v  error: %s", who, err)
		return 0, err
	}

	id, err := l.ids.next()
	if nil != err {
		l.log.Criticalf("create lot error: %s", err)
		return 0, err
	}

	lot := &lotrecord.CoffeeLot{
		Id:          id,
		Farmer:      farmer,
		HarvestDate: harvestDate,
		Location:    location,
		Status:      lotrecord.InitialStatus,
		Updates:     []lotrecord.Update{},
		Timestamp:   l.now(),
	}

	err = l.put(lot)
	if nil != err {
		l.log.Errorf("create lot: %d  error: %s", id, err)
		return 0, err
	}
	l.ids.consume()

	l.log.Infof("created lot: %d  by: %s", id, who)
	return id, nil
}

// AppendUpdate - add an update to a lot and make its status current
//
// nothing is written if the lot would exceed the record size limit
func (l *Ledger) AppendUpdate(who *identity.Identity, lotId uint64, status string, details string) error {
	l.Lock()
	defer l.Unlock()

	err := l.gate.authorise(who)
	if nil != err {
		l.log.Warnf("update lot: %d  by: %v  error: %s", lotId, who, err)
		return err
	}

	lot, err := l.get(lotId)
	if nil != err {
		l.log.Warnf("update lot: %d  error: %s", lotId, err)
		return err
	}

	lot.Updates = append(lot.Updates, lotrecord.Update{
		Status:    status,
		Details:   details,
		Timestamp: l.now(),
		UpdatedBy: who,
	})
	lot.Status = status

	err = l.put(lot)
	if nil != err {
		l.log.Errorf("update lot: %d  error: %s", lotId, err)
		return err
	}

	l.log.Infof("updated lot: %d  status: %q  by: %s", lotId, status, who)
	return nil
}

// GetLot - fetch a lot with all of its updates
func (l *Ledger) GetLot(lotId uint64) (*lotrecord.CoffeeLot, error) {
	l.Lock()
	defer l.Unlock()

	lot, err := l.get(lotId)
	if nil != err {
		l.log.Debugf("get lot: %d  error: %s", lotId, err)
		return nil, err
	}
	return lot, nil
}

// ListLots - every lot in ascending id order
func (l *Ledger) ListLots() ([]*lotrecord.CoffeeLot, error) {
	l.Lock()
	defer l.Unlock()

	lots := make([]*lotrecord.CoffeeLot, 0)
	err := l.lots.NewFetchCursor().Map(func(key []byte, value []byte) error {
		lot, err := l.decode(key, value)
		if nil != err {
			return err
		}
		lots = append(lots, lot)
		return nil
	})
	if nil != err {
		l.log.Errorf("list lots error: %s", err)
		return nil, err
	}
	return lots, nil
}

// ListLotsFrom - up to count lots with id >= start
//
// also returns the id to start the following page from
func (l *Ledger) ListLotsFrom(start uint64, count int) ([]*lotrecord.CoffeeLot, uint64, error) {
	if count <= 0 {
		return nil, start, fault.ErrInvalidCount
	}

	l.Lock()
	defer l.Unlock()

	elements, err := l.lots.NewFetchCursor().Seek(lotrecord.LotKey(start)).Fetch(count)
	if nil != err {
		l.log.Errorf("list lots from: %d  error: %s", start, err)
		return nil, start, err
	}

	next := start
	lots := make([]*lotrecord.CoffeeLot, 0, len(elements))
	for _, e := range elements {
		lot, err := l.decode(e.Key, e.Value)
		if nil != err {
			l.log.Errorf("list lots from: %d  error: %s", start, err)
			return nil, start, err
		}
		lots = append(lots, lot)
		next = lot.Id + 1
	}
	return lots, next, nil
}

// LotCount - number of lots created
func (l *Ledger) LotCount() uint64 {
	l.Lock()
	defer l.Unlock()

	return l.ids.used()
}

// read and decode a lot, caller must hold the lock
func (l *Ledger) get(lotId uint64) (*lotrecord.CoffeeLot, error) {
	key := lotrecord.LotKey(lotId)
	packed := l.lots.Get(key)
	if nil == packed {
		return nil, fault.ErrLotNotFound
	}
	return l.decode(key, packed)
}

// the stored id must agree with the key
func (l *Ledger) decode(key []byte, value []byte) (*lotrecord.CoffeeLot, error) {
	id, err := lotrecord.LotIdFromKey(key)
	if nil != err {
		return nil, err
	}
	lot, err := lotrecord.Packed(value).UnpackLot()
	if nil != err {
		l.log.Errorf("lot: %d  error: %s", id, err)
		return nil, err
	}
	if id != lot.Id {
		l.log.Errorf("lot: %d  stored with id: %d", id, lot.Id)
		return nil, fault.ErrCorruptRecord
	}
	return lot, nil
}

// pack and write a whole lot, caller must hold the lock
func (l *Ledger) put(lot *lotrecord.CoffeeLot) error {
	packed, err := lot.Pack()
	if nil != err {
		return err
	}
	return l.lots.Put(lotrecord.LotKey(lot.Id), packed)
}
