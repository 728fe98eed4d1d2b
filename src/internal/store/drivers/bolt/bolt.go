// Package bolt provides a store.ConfigStore that persists app configuration
// in a bbolt database file.
package bolt

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/maksimkurb/keen-console/src/internal/hashing"
	"github.com/maksimkurb/keen-console/src/internal/log"
	"github.com/maksimkurb/keen-console/src/internal/store"
)

var appConfigsBucketKey = []byte("app-configs")

// SchemaVersion is the current version of the bolt db
const SchemaVersion = "1"

type (
	// Storage is a store.ConfigStore implementation that persists app
	// configuration in a bbolt database
	Storage struct {
		db   *bbolt.DB
		path string
	}

	entry struct {
		Text     string `json:"text"`
		Updated  int64  `json:"updated"`
		Checksum string `json:"checksum"`
	}
)

func newEntry(text string, updated time.Time) entry {
	return entry{
		Text:     text,
		Updated:  updated.Unix(),
		Checksum: hashing.TextChecksum(text),
	}
}

// LoadConfig implements store.ConfigStore
func (s *Storage) LoadConfig(ctx context.Context, app string) (string, error) {
	if err := store.ValidateAppID(app); err != nil {
		return "", err
	}

	var e entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(appConfigsBucketKey)
		if bucket == nil {
			// nothing has been saved yet
			return nil
		}

		blob := bucket.Get([]byte(app))
		if blob == nil {
			return nil
		}
		return json.Unmarshal(blob, &e)
	})
	if err != nil {
		return "", err
	}

	if e.Checksum != "" && e.Checksum != hashing.TextChecksum(e.Text) {
		log.Warnf("Stored configuration of %q does not match its checksum", app)
	}
	return e.Text, nil
}

// SaveConfig implements store.ConfigStore
func (s *Storage) SaveConfig(ctx context.Context, app, text string) error {
	if err := store.ValidateAppID(app); err != nil {
		return err
	}

	blob, err := json.Marshal(newEntry(text, time.Now()))
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(appConfigsBucketKey)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(app), blob)
	})
}

// ListApps implements store.AppLister
func (s *Storage) ListApps(ctx context.Context) ([]string, error) {
	var apps []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(appConfigsBucketKey)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, _ []byte) error {
			apps = append(apps, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(apps)
	return apps, nil
}

// Close implements store.ConfigStore
func (s *Storage) Close() error {
	return s.db.Close()
}
