package bolt

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/maksimkurb/keen-console/src/internal/store"
)

func init() {
	store.MustRegister("bolt", storageFactory)
}

func storageFactory(args map[string]string) (store.ConfigStore, error) {
	file := args["path"]
	if file == "" {
		return nil, fmt.Errorf("no database file configured")
	}

	db, err := bbolt.Open(file, 0o660, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file, err)
	}

	if err := migrateDatabase(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate %s: %w", file, err)
	}

	return &Storage{db: db, path: file}, nil
}
