package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/pkg/storage"
)

// BaseRepository provides the blob codec shared by all repositories: each
// collection is one key in the collections bucket whose value is the JSON
// encoding of the whole collection. Every write rewrites the blob, which is
// what makes a single-record mutation atomic from the caller's point of view.
type BaseRepository struct {
	DB *bolt.DB
}

// loadCollection reads and decodes one collection blob into out. A missing
// key leaves out untouched (the collection simply does not exist yet). Read
// failures are surfaced as apperrors.ErrStorageUnavailable.
func (r *BaseRepository) loadCollection(ctx context.Context, key string, out any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	var data []byte
	err := r.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(storage.CollectionsBucket))
		if bucket == nil {
			return fmt.Errorf("%w: collections bucket missing", apperrors.ErrStorageUnavailable)
		}
		if value := bucket.Get([]byte(key)); value != nil {
			// The slice is only valid inside the transaction.
			data = append([]byte(nil), value...)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: corrupt %q collection: %v", apperrors.ErrStorageUnavailable, key, err)
	}
	return nil
}

// saveCollection encodes in and rewrites the collection blob under key.
// Write failures are surfaced as apperrors.ErrPersistence.
func (r *BaseRepository) saveCollection(ctx context.Context, key string, in any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: cannot encode %q collection: %v", apperrors.ErrPersistence, key, err)
	}

	err = r.DB.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(storage.CollectionsBucket))
		if bucket == nil {
			return fmt.Errorf("collections bucket missing")
		}
		return bucket.Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("%w: cannot write %q collection: %v", apperrors.ErrPersistence, key, err)
	}
	return nil
}
