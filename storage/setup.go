// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/kittyd/fault"
)

// Pools - the set of exported pools, prefix tags must be unique
type Pools struct {
	Kitties    *PoolHandle `prefix:"K"`
	Owners     *PoolHandle `prefix:"O"`
	AllList    *PoolHandle `prefix:"A"`
	AllIndex   *PoolHandle `prefix:"I"`
	AllCount   *PoolHandle `prefix:"C"`
	OwnedList  *PoolHandle `prefix:"L"`
	OwnedIndex *PoolHandle `prefix:"D"`
	OwnedCount *PoolHandle `prefix:"N"`
	Nonce      *PoolHandle `prefix:"X"`
	Balances   *PoolHandle `prefix:"B"`
}

// Store - an open database together with its pools
type Store struct {
	sync.Mutex

	log    *logger.L
	db     *leveldb.DB
	access *accessData
	Pool   Pools
}

const currentVersion = 0x100

var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// Open - open (creating if necessary) the database at the given path
func Open(fileName string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}
	db, err := leveldb.OpenFile(fileName, opt)
	if nil != err {
		return nil, err
	}

	s, err := setup(db, !readOnly)
	if nil != err {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New - wrap an already open database
func New(db *leveldb.DB) (*Store, error) {
	return setup(db, true)
}

func setup(db *leveldb.DB, writable bool) (*Store, error) {
	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		log.Errorf("read version error: %s", err)
		return nil, err
	}

	switch {
	case currentVersion == version:
	case 0 == version:
		if !writable {
			return nil, fault.NotInitialised
		}
		log.Infof("initialise database version: 0x%x", currentVersion)
		if err := putVersion(db, currentVersion); nil != err {
			return nil, err
		}
	case version > currentVersion:
		log.Errorf("database version: 0x%x > current version: 0x%x", version, currentVersion)
		return nil, fault.DatabaseIsNewer
	default:
		log.Errorf("database version: 0x%x cannot be upgraded to: 0x%x", version, currentVersion)
		return nil, fault.DatabaseIsNewer
	}

	s := &Store{
		log:    log,
		db:     db,
		access: newAccess(db),
	}

	// allocate the pool handles from the prefix tags
	poolsValue := reflect.ValueOf(&s.Pool).Elem()
	poolsType := poolsValue.Type()
	seen := make(map[byte]string)
	for i := 0; i < poolsType.NumField(); i += 1 {
		fieldInfo := poolsType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			logger.Panicf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}
		prefix := prefixTag[0]
		if name, ok := seen[prefix]; ok {
			logger.Panicf("pool: %v duplicates prefix of pool: %v", fieldInfo.Name, name)
		}
		seen[prefix] = fieldInfo.Name

		p := &PoolHandle{
			prefix: prefix,
			limit:  []byte{prefix + 1},
			access: s.access,
		}
		poolsValue.Field(i).Set(reflect.ValueOf(p))
	}

	log.Info("ready")
	return s, nil
}

// Close - flush and close the database
func (s *Store) Close() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.log.Info("closed")
	return err
}

// Begin - start a new transaction, only one may be in use at a time
func (s *Store) Begin() (Transaction, error) {
	if err := s.access.begin(); nil != err {
		return nil, err
	}
	return &transaction{access: s.access}, nil
}

// Get - read data, implements Reader
func (s *Store) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

// GetN - read a count, implements Reader
func (s *Store) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

// Has - check for a key, implements Reader
func (s *Store) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fault.RecordTruncated
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	versionValue := make([]byte, 4)
	binary.BigEndian.PutUint32(versionValue, uint32(version))
	return db.Put(versionKey, versionValue, nil)
}
