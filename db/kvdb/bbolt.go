package kvdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/meghashyamc/finder/config"
	"github.com/meghashyamc/finder/logger"
	bolt "go.etcd.io/bbolt"
)

type BoltDB struct {
	store  *bolt.DB
	logger logger.Logger
}

func New(logger logger.Logger, cfg *config.Config) (*BoltDB, error) {
	kvDBPath := cfg.GetKVDBPath()
	if err := os.MkdirAll(filepath.Dir(kvDBPath), 0755); err != nil {
		logger.Error("failed to create key-value database directory", "err", err.Error(), "path", kvDBPath)
		return nil, fmt.Errorf("failed to create key-value database directory: %w", err)
	}

	store, err := bolt.Open(kvDBPath, 0600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		logger.Error("failed to open database", "err", err.Error(), "path", kvDBPath)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	boltDB := &BoltDB{
		store:  store,
		logger: logger,
	}

	if err := boltDB.initBuckets(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return boltDB, nil
}

func (b *BoltDB) initBuckets() error {
	return b.store.Update(func(tx *bolt.Tx) error {
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				b.logger.Error("failed to create bucket", "bucket", bucket, "err", err.Error())
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
}

func (b *BoltDB) Set(bucket string, key string, value string) error {
	if err := b.validateKey(key); err != nil {
		return err
	}

	return b.store.Update(func(tx *bolt.Tx) error {
		bkt, err := b.bucket(tx, bucket)
		if err != nil {
			return err
		}

		if err := bkt.Put([]byte(key), []byte(value)); err != nil {
			b.logger.Error("failed to set key", "bucket", bucket, "key", key, "err", err.Error())
			return fmt.Errorf("failed to set key %s: %w", key, err)
		}

		return nil
	})
}

// Update reads key and writes back what fn returns in one read-write transaction,
// so concurrent updates of the same key are serialized. found is false when the key
// is absent. An error from fn aborts the transaction.
func (b *BoltDB) Update(bucket string, key string, fn func(current string, found bool) (string, error)) error {
	if err := b.validateKey(key); err != nil {
		return err
	}

	return b.store.Update(func(tx *bolt.Tx) error {
		bkt, err := b.bucket(tx, bucket)
		if err != nil {
			return err
		}

		current := bkt.Get([]byte(key))
		value, err := fn(string(current), current != nil)
		if err != nil {
			return err
		}

		if err := bkt.Put([]byte(key), []byte(value)); err != nil {
			b.logger.Error("failed to update key", "bucket", bucket, "key", key, "err", err.Error())
			return fmt.Errorf("failed to update key %s: %w", key, err)
		}

		return nil
	})
}

func (b *BoltDB) Get(bucket string, key string) (string, error) {
	if err := b.validateKey(key); err != nil {
		return "", err
	}

	var value []byte
	err := b.store.View(func(tx *bolt.Tx) error {
		bkt, err := b.bucket(tx, bucket)
		if err != nil {
			return err
		}

		v := bkt.Get([]byte(key))
		if v == nil {
			return &NotFoundError{Key: key}
		}

		value = make([]byte, len(v))
		copy(value, v)
		return nil
	})

	if err != nil {
		var notFoundErr *NotFoundError
		if errors.As(err, &notFoundErr) {
			b.logger.Debug("key not found", "bucket", bucket, "key", key)
		}
		return "", err
	}

	return string(value), nil
}

func (b *BoltDB) Delete(bucket string, key string) error {
	if err := b.validateKey(key); err != nil {
		return err
	}

	return b.store.Update(func(tx *bolt.Tx) error {
		bkt, err := b.bucket(tx, bucket)
		if err != nil {
			return err
		}

		if err := bkt.Delete([]byte(key)); err != nil {
			b.logger.Error("failed to delete key", "bucket", bucket, "key", key, "err", err.Error())
			return fmt.Errorf("failed to delete key %s: %w", key, err)
		}

		return nil
	})
}

// GetAll returns a copy of every key/value pair in the bucket.
func (b *BoltDB) GetAll(bucket string) (map[string]string, error) {
	values := make(map[string]string)
	err := b.store.View(func(tx *bolt.Tx) error {
		bkt, err := b.bucket(tx, bucket)
		if err != nil {
			return err
		}

		return bkt.ForEach(func(k, v []byte) error {
			values[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// Clear removes every key in the bucket and leaves the bucket in place.
func (b *BoltDB) Clear(bucket string) error {
	return b.store.Update(func(tx *bolt.Tx) error {
		if _, err := b.bucket(tx, bucket); err != nil {
			return err
		}
		if err := tx.DeleteBucket([]byte(bucket)); err != nil {
			b.logger.Error("failed to delete bucket", "bucket", bucket, "err", err.Error())
			return fmt.Errorf("failed to clear bucket %s: %w", bucket, err)
		}
		if _, err := tx.CreateBucket([]byte(bucket)); err != nil {
			b.logger.Error("failed to recreate bucket", "bucket", bucket, "err", err.Error())
			return fmt.Errorf("failed to clear bucket %s: %w", bucket, err)
		}
		return nil
	})
}

func (b *BoltDB) Close() error {
	if b.store != nil {
		return b.store.Close()
	}
	return nil
}

func (b *BoltDB) bucket(tx *bolt.Tx, name string) (*bolt.Bucket, error) {
	bkt := tx.Bucket([]byte(name))
	if bkt == nil {
		b.logger.Error("bucket not found", "bucket", name)
		return nil, &BucketNotFoundError{Bucket: name}
	}
	return bkt, nil
}

func (b *BoltDB) validateKey(key string) error {
	if key == "" {
		b.logger.Error("key cannot be empty", "key", key)
		return &InvalidKeyError{
			Key:    key,
			Reason: "key cannot be empty",
		}
	}
	return nil
}
