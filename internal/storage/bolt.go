package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("storefront")

type boltStorage struct {
	db *bolt.DB
}

// NewBoltStorage opens (or creates) a single-file store at path. It is the
// driver for single-node deployments that still need state across restarts.
func NewBoltStorage(path string) (Storage, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &boltStorage{db: db}, nil
}

func (b *boltStorage) Get(_ context.Context, key string, value any) (bool, error) {
	found := false

	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketName).Get([]byte(key))
		if data == nil {
			return nil
		}

		found = true

		// data is only valid inside the transaction
		return json.Unmarshal(data, value)
	})
	if err != nil {
		return false, fmt.Errorf("failed to get key %s from bolt: %w", key, err)
	}

	return found, nil
}

func (b *boltStorage) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to set key %s in bolt: %w", key, err)
	}

	return nil
}

func (b *boltStorage) Delete(_ context.Context, key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %s from bolt: %w", key, err)
	}

	return nil
}

func (b *boltStorage) Close() error {
	return b.db.Close()
}
