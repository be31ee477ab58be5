// Package leveldbstore implements store.BatchStore on top of LevelDB, the
// on-disk key-value engine backing a production worker's batch store.
//
// Grounded on nili1tomo-oasis-core's go/storage/leveldb/leveldb.go: a
// goleveldb.DB wrapped behind the domain's own Backend-style interface, with
// a logger field and a named on-disk file constant. The spec treats the storage
// engine itself as an external collaborator (interface only); this is the
// one concrete backend this repo ships.
package leveldbstore

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/dagconsensus/worker/internal/batchtypes"
	"github.com/dagconsensus/worker/internal/log"
)

// DBFile is a conventional backing directory name for the batch store.
// Open does not apply it: the path passed to Open is used as given.
const DBFile = "worker-batches.leveldb.db"

type leveldbStore struct {
	logger log.Logger
	db     *leveldb.DB
}

// Open opens (creating if needed) a LevelDB database at path as a
// store.BatchStore.
func Open(path string, logger log.Logger) (*leveldbStore, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, err
	}
	return &leveldbStore{logger: logger, db: db}, nil
}

func (s *leveldbStore) Get(d batchtypes.BatchDigest) (*batchtypes.Batch, bool, error) {
	raw, err := s.db.Get(d[:], nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	b, err := decodeBatch(raw)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *leveldbStore) MultiGet(ds []batchtypes.BatchDigest) ([]*batchtypes.Batch, error) {
	out := make([]*batchtypes.Batch, len(ds))
	for i, d := range ds {
		b, ok, err := s.Get(d)
		if err != nil {
			return nil, err
		}
		if ok {
			out[i] = b
		}
	}
	return out, nil
}

func (s *leveldbStore) Insert(d batchtypes.BatchDigest, b *batchtypes.Batch) error {
	raw, err := encodeBatch(b)
	if err != nil {
		return err
	}
	return s.db.Put(d[:], raw, nil)
}

func (s *leveldbStore) Remove(d batchtypes.BatchDigest) error {
	err := s.db.Delete(d[:], nil)
	if err != nil && err != leveldb.ErrNotFound {
		return err
	}
	return nil
}

func (s *leveldbStore) Close() error {
	return s.db.Close()
}
