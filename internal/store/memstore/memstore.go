// Package memstore implements store.BatchStore in memory. It backs
// local-only worker deployments and tests; a production worker uses
// internal/store/leveldbstore instead.
//
// A mutex-guarded map, the same shape as a simple in-memory cache tier.
// Unlike a cache, entries here never expire or get evicted — the store is
// content-addressed, so nothing is ever stale, and the spec gives the store
// no capacity bound to enforce.
package memstore

import (
	"sync"

	"github.com/dagconsensus/worker/internal/batchtypes"
)

type memStore struct {
	mu      sync.RWMutex
	batches map[batchtypes.BatchDigest]*batchtypes.Batch
}

// New returns an empty in-memory BatchStore.
func New() *memStore {
	return &memStore{batches: make(map[batchtypes.BatchDigest]*batchtypes.Batch)}
}

func (s *memStore) Get(d batchtypes.BatchDigest) (*batchtypes.Batch, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.batches[d]
	return b, ok, nil
}

func (s *memStore) MultiGet(ds []batchtypes.BatchDigest) ([]*batchtypes.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*batchtypes.Batch, len(ds))
	for i, d := range ds {
		out[i] = s.batches[d]
	}
	return out, nil
}

func (s *memStore) Insert(d batchtypes.BatchDigest, b *batchtypes.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[d] = b
	return nil
}

func (s *memStore) Remove(d batchtypes.BatchDigest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.batches, d)
	return nil
}

func (s *memStore) Close() error {
	return nil
}
