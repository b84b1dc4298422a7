// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"

	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/lotrecord"
	"github.com/coffeechain/lotledgerd/storage"
)

// hands out lot ids 0, 1, 2, ...
//
// an id only counts as used once consume is called, so a failed
// create does not leave a gap
type allocator struct {
	nextId    uint64
	exhausted bool
}

// rebuild from the highest key in the lots region
func newAllocator(lots storage.Handle) (*allocator, error) {
	last, found := lots.LastElement()
	if !found {
		return &allocator{}, nil
	}

	id, err := lotrecord.LotIdFromKey(last.Key)
	if nil != err {
		return nil, err
	}
	if math.MaxUint64 == id {
		return &allocator{nextId: id, exhausted: true}, nil
	}
	return &allocator{nextId: id + 1}, nil
}

// the id the next create will use
func (a *allocator) next() (uint64, error) {
	if a.exhausted {
		return 0, fault.ErrIdentifierOverflow
	}
	return a.nextId, nil
}

// mark the id returned by next as used
func (a *allocator) consume() {
	if math.MaxUint64 == a.nextId {
		a.exhausted = true
		return
	}
	a.nextId += 1
}

// number of ids used so far, saturating at MaxUint64
func (a *allocator) used() uint64 {
	if a.exhausted {
		return math.MaxUint64
	}
	return a.nextId
}
