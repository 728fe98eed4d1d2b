package bolt

import (
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"
)

// v0ConfigsBucket held the raw configuration text keyed by app ID.
var v0ConfigsBucket = []byte("configs")

// v0ToV1 wraps raw configuration text into JSON entries.
func v0ToV1(tx *bbolt.Tx) error {
	configs := tx.Bucket(v0ConfigsBucket)
	if configs != nil {
		target, err := tx.CreateBucketIfNotExists(appConfigsBucketKey)
		if err != nil {
			return err
		}

		now := time.Now()
		err = configs.ForEach(func(k, v []byte) error {
			blob, err := json.Marshal(newEntry(string(v), now))
			if err != nil {
				return err
			}
			return target.Put(k, blob)
		})
		if err != nil {
			return err
		}

		if err := tx.DeleteBucket(v0ConfigsBucket); err != nil {
			return err
		}
	}

	return tx.Bucket(schemaVersionBucket).Put(schemaVersionKey, []byte("1"))
}
