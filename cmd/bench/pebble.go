package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/cockroachdb/pebble"
)

// pebbleStore runs Pebble behind the store interface so the on-disk LSM
// baseline is driven exactly like the in-memory trees.
type pebbleStore struct {
	db  *pebble.DB
	dir string
}

func openPebbleStore(dir string) (*pebbleStore, error) {
	opts := &pebble.Options{
		MemTableSize:                16 << 20,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("pebble: open: %w", err)
	}
	return &pebbleStore{db: db, dir: dir}, nil
}

func (s *pebbleStore) Insert(key int64, value []byte) error {
	return s.db.Set(encodeKey(key), value, pebble.NoSync)
}

func (s *pebbleStore) Get(key int64) ([]byte, error) {
	val, closer, err := s.db.Get(encodeKey(key))
	if err == pebble.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pebble: get: %w", err)
	}
	// val is only valid until closer.Close(), so copy it out.
	out := make([]byte, len(val))
	copy(out, val)
	closer.Close()
	return out, nil
}

func (s *pebbleStore) Delete(key int64) error {
	return s.db.Delete(encodeKey(key), pebble.NoSync)
}

// Close shuts Pebble down and discards the scratch directory.
func (s *pebbleStore) Close() error {
	err := s.db.Close()
	os.RemoveAll(s.dir)
	return err
}

// encodeKey encodes an int64 big-endian so byte order matches key order.
func encodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k))
	return b
}
