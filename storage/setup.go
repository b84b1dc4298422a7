// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/util"
)

// Regions - the regions used by the ledger
//
// note all must be exported (i.e. initial capital) or allocation will fail
type Regions struct {
	Lots            *PoolHandle `region:"0" name:"lots"`
	RegisteredUsers *PoolHandle `region:"1" name:"registered-users"`
}

// Store - an open database with its allocated regions
type Store struct {
	sync.RWMutex

	log      *logger.L
	name     string
	readOnly bool
	db       *leveldb.DB
	access   Access
	table    regionTable

	Pool Regions
}

// store access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

const (
	currentVersion = 0x100
	metadataRegion = 0xff
)

// metadata keys
var (
	versionKey = []byte{metadataRegion, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}
	regionsKey = []byte{metadataRegion, 'R', 'E', 'G', 'I', 'O', 'N', 'S'}
)

// Open - open (or create) a database and allocate the ledger regions
func Open(database string, readOnly bool) (*Store, error) {
	if "" == database {
		return nil, fault.ErrInvalidDatabaseName
	}

	log := logger.New("storage")

	db, version, err := getDB(database, readOnly)
	if nil != err {
		log.Errorf("open: %q  error: %s", database, err)
		return nil, err
	}

	// ensure no database downgrade
	if version > currentVersion {
		db.Close()
		log.Criticalf("database version: %d > current version: %d", version, currentVersion)
		return nil, fault.ErrDatabaseIsNewer
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	table, err := getRegionTable(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	s := &Store{
		log:      log,
		name:     database,
		readOnly: readOnly,
		db:       db,
		access:   newDA(db, newCache()),
		table:    table,
	}

	err = s.Allocate(&s.Pool)
	if nil != err {
		s.Close()
		return nil, err
	}

	log.Infof("opened: %q  version: %d  regions: %d", database, currentVersion, len(s.table))
	return s, nil
}

// Close - close the database, any later access reports not initialised
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return
	}
	err := s.db.Close()
	if nil != err {
		s.log.Errorf("close: %q  error: %s", s.name, err)
	}
	s.db = nil
	s.access = nil
	s.log.Infof("closed: %q", s.name)
}

// Allocate - bind every *PoolHandle field of a struct to its region
//
// regions is a pointer to a struct whose fields are tagged:
//   `region:"N" name:"some-name"`
//
// a region already recorded under a different name fails with
// ErrRegionMismatch, new regions are added to the stored table
func (s *Store) Allocate(regions interface{}) error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrNotInitialised
	}

	pointer := reflect.ValueOf(regions)
	if reflect.Ptr != pointer.Kind() || reflect.Struct != pointer.Elem().Kind() {
		return fault.ErrInvalidStructPointer
	}

	// get write access by using pointer + Elem()
	poolValue := pointer.Elem()

	// this will be a struct type
	poolType := poolValue.Type()

	handleType := reflect.TypeOf((*PoolHandle)(nil))

	table := s.table.clone()
	changed := false
	handles := make([]*PoolHandle, poolType.NumField())

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		if handleType != fieldInfo.Type || !poolValue.Field(i).CanSet() {
			return fmt.Errorf("region: %s is not an exported *PoolHandle", fieldInfo.Name)
		}

		regionTag := fieldInfo.Tag.Get("region")
		id, err := strconv.ParseUint(regionTag, 10, 8)
		if nil != err || id >= metadataRegion {
			s.log.Errorf("region: %s has invalid id: %q", fieldInfo.Name, regionTag)
			return fault.ErrInvalidRegion
		}
		region := byte(id)

		name := fieldInfo.Tag.Get("name")
		if "" == name || len(name) > 255 {
			s.log.Errorf("region: %s has no name", fieldInfo.Name)
			return fault.ErrInvalidRegion
		}

		added, err := table.bind(region, name)
		if nil != err {
			s.log.Criticalf("region: %d  name: %q  error: %s", region, name, err)
			return err
		}
		changed = changed || added

		handles[i] = &PoolHandle{
			region: region,
			name:   name,
			limit:  []byte{region + 1},
			store:  s,
		}
	}

	if changed {
		if s.readOnly {
			s.log.Criticalf("read only database: %q lacks declared regions", s.name)
			return fault.ErrRegionMismatch
		}
		err := s.db.Put(regionsKey, table.pack(), syncWrite)
		if nil != err {
			return err
		}
	}
	s.table = table

	for i, p := range handles {
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// RegionNames - the persisted region table, id to name
func (s *Store) RegionNames() map[byte]string {
	s.RLock()
	defer s.RUnlock()

	return s.table.clone()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, syncWrite)
}

// region id to name as stored under regionsKey
type regionTable map[byte]string

func getRegionTable(db *leveldb.DB) (regionTable, error) {
	table := make(regionTable)

	packed, err := db.Get(regionsKey, nil)
	if leveldb.ErrNotFound == err {
		return table, nil
	} else if nil != err {
		return nil, err
	}

	n := 0
	for n < len(packed) {
		id, idLength := util.ClippedVarint64(packed[n:], 0, metadataRegion-1)
		if 0 == idLength {
			return nil, fault.ErrCorruptRecord
		}
		n += idLength

		nameLength, nameOffset := util.ClippedVarint64(packed[n:], 1, 255)
		if 0 == nameOffset || n+nameOffset+nameLength > len(packed) {
			return nil, fault.ErrCorruptRecord
		}
		n += nameOffset
		table[byte(id)] = string(packed[n : n+nameLength])
		n += nameLength
	}
	return table, nil
}

// bind a name to a region id, true if the table was extended
func (table regionTable) bind(region byte, name string) (bool, error) {
	if existing, ok := table[region]; ok {
		if existing != name {
			return false, fault.ErrRegionMismatch
		}
		return false, nil
	}
	for id, existing := range table {
		if existing == name && id != region {
			return false, fault.ErrRegionMismatch
		}
	}
	table[region] = name
	return true, nil
}

func (table regionTable) clone() regionTable {
	result := make(regionTable, len(table))
	for id, name := range table {
		result[id] = name
	}
	return result
}

// in ascending region order so the stored bytes are stable
func (table regionTable) pack() []byte {
	buffer := []byte{}
	for i := 0; i < metadataRegion; i += 1 {
		name, ok := table[byte(i)]
		if !ok {
			continue
		}
		buffer = util.AppendVarint64(buffer, uint64(i))
		buffer = util.AppendVarint64(buffer, uint64(len(name)))
		buffer = append(buffer, name...)
	}
	return buffer
}
