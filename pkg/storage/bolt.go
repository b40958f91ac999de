package storage

import (
	"fmt"
	"log"
	"time"

	bolt "go.etcd.io/bbolt"
)

// CollectionsBucket is the single bucket holding every named collection blob.
// The store is deliberately primitive: one key per collection, JSON list as
// the value, no cross-key transactions, no secondary indexes.
const CollectionsBucket = "collections"

// OpenBolt opens (creating if necessary) the embedded bolt database that
// backs all collections, and makes sure the collections bucket exists.
func OpenBolt(path string) (*bolt.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	// The timeout bounds the file-lock wait when another process holds the DB.
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database at %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(CollectionsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create collections bucket: %w", err)
	}

	log.Printf("Successfully opened bolt database at %s.\n", path)
	return db, nil
}
