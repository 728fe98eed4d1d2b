package memory

import "github.com/maksimkurb/keen-console/src/internal/store"

func init() {
	store.MustRegister("memory", func(_ map[string]string) (store.ConfigStore, error) {
		return New(), nil
	})
}
