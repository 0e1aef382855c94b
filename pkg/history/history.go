// Package history keeps past benchmark reports in a bolt database.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"github.com/tjeromin/Sorting-Algorithms/pkg/helpers"
	"github.com/tjeromin/Sorting-Algorithms/pkg/structs"
)

var bucketReports = []byte("reports")

type Store struct {
	db *bolt.DB
}

type BucketFunc func(bucket *bolt.Bucket) error

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.WithStack(err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open history %s", path)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save appends r. Keys sort by start time, so List returns runs oldest first.
func (s *Store) Save(r *structs.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return errors.WithStack(err)
	}

	return s.bucket(true, func(bucket *bolt.Bucket) error {
		return bucket.Put(key(r), data)
	})
}

func (s *Store) List() (structs.Reports, error) {
	rs := structs.Reports{}

	err := s.bucket(false, func(bucket *bolt.Bucket) error {
		return bucket.ForEach(func(k, v []byte) error {
			var r structs.Report

			if err := json.Unmarshal(v, &r); err != nil {
				return errors.Wrapf(err, "corrupt report %s", k)
			}

			rs = append(rs, r)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return rs, nil
}

// Get returns the report with the given id.
func (s *Store) Get(id string) (*structs.Report, error) {
	rs, err := s.List()
	if err != nil {
		return nil, err
	}

	for _, r := range rs {
		if r.Id == id {
			return &r, nil
		}
	}

	return nil, errors.Errorf("no such run: %s", id)
}

func (s *Store) bucket(writable bool, fn BucketFunc) error {
	tx, err := s.db.Begin(writable)
	if err != nil {
		return errors.WithStack(err)
	}
	defer tx.Rollback()

	b := tx.Bucket(bucketReports)

	if b == nil {
		if !writable {
			return nil
		}

		if b, err = tx.CreateBucket(bucketReports); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := fn(b); err != nil {
		return err
	}

	if !writable {
		return nil
	}

	return tx.Commit()
}

func key(r *structs.Report) []byte {
	return []byte(r.Started.UTC().Format(helpers.SortableTime) + "/" + r.Id)
}
