package main

import (
	"btree/btree"

	gbtree "github.com/google/btree"
)

// store is the slice of index behavior the suite drives. Lookup misses
// surface as (nil, nil) so the hot loops stay branch-light.
type store interface {
	Insert(key int64, value []byte) error
	Get(key int64) ([]byte, error)
	Delete(key int64) error
	Close() error
}

// treeStore drives the local tree. Insert is a caller-side upsert, since
// the tree itself always adds a new slot for a duplicate key.
type treeStore struct {
	t *btree.Tree[int64, []byte]
}

func newTreeStore(d int) *treeStore {
	return &treeStore{t: btree.NewWithDegree[int64, []byte](d)}
}

func (s *treeStore) Insert(key int64, value []byte) error {
	if _, ok := s.t.Get(key); ok {
		s.t.Update(key, value)
		return nil
	}
	s.t.Insert(key, value)
	return nil
}

func (s *treeStore) Get(key int64) ([]byte, error) {
	v, _ := s.t.Get(key)
	return v, nil
}

func (s *treeStore) Delete(key int64) error {
	s.t.Delete(key)
	return nil
}

func (s *treeStore) Close() error { return nil }

// googleStore wraps google/btree as a second in-memory baseline.
type gItem struct {
	key int64
	val []byte
}

type googleStore struct {
	t *gbtree.BTreeG[gItem]
}

func newGoogleStore(d int) *googleStore {
	less := func(a, b gItem) bool { return a.key < b.key }
	return &googleStore{t: gbtree.NewG(d, less)}
}

func (s *googleStore) Insert(key int64, value []byte) error {
	s.t.ReplaceOrInsert(gItem{key: key, val: value})
	return nil
}

func (s *googleStore) Get(key int64) ([]byte, error) {
	if it, ok := s.t.Get(gItem{key: key}); ok {
		return it.val, nil
	}
	return nil, nil
}

func (s *googleStore) Delete(key int64) error {
	s.t.Delete(gItem{key: key})
	return nil
}

func (s *googleStore) Close() error { return nil }
