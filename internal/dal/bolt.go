package dal

import (
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"
)

const (
	deliveriesBucket = "deliveries"
	runsBucket       = "runs"
)

// BoltDB is the delivery audit store. The subscriber set itself lives in a
// plain-text snapshot file; bolt only records what was sent and how each
// broadcast run went.
type BoltDB struct {
	db *bbolt.DB
}

func NewBoltDB(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{deliveriesBucket, runsBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %q: %w", name, err)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &BoltDB{db: db}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func i64tob(id int64) []byte {
	return []byte(strconv.FormatInt(id, 10))
}
