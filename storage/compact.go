// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"reflect"

	"github.com/coffeechain/lotledgerd/fault"
)

// Compact - compact every ledger region
//
// overwritten lots leave superseded versions in the LevelDB tables
// until a compaction covering their keys runs
func (s *Store) Compact() error {
	s.RLock()
	defer s.RUnlock()

	if nil == s.access {
		return fault.ErrNotInitialised
	}

	poolValue := reflect.ValueOf(s.Pool)
	for i := 0; i < poolValue.NumField(); i += 1 {
		p, ok := poolValue.Field(i).Interface().(*PoolHandle)
		if !ok || nil == p {
			continue
		}
		err := s.access.Compact(p.keyRange())
		if nil != err {
			s.log.Errorf("compact region: %q  error: %s", p.name, err)
			return err
		}
		s.log.Debugf("compacted region: %q", p.name)
	}
	return nil
}
