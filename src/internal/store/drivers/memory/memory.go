// Package memory provides a store.ConfigStore that keeps app configuration
// in process memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/maksimkurb/keen-console/src/internal/store"
)

// Storage is a store.ConfigStore backed by a map.
type Storage struct {
	rw      sync.RWMutex
	configs map[string]string
}

// New returns an empty Storage.
func New() *Storage {
	return &Storage{configs: make(map[string]string)}
}

// Seed returns a Storage preloaded with configs.
func Seed(configs map[string]string) *Storage {
	s := New()
	for app, text := range configs {
		s.configs[app] = text
	}
	return s
}

// LoadConfig implements store.ConfigStore.
func (s *Storage) LoadConfig(ctx context.Context, app string) (string, error) {
	if err := store.ValidateAppID(app); err != nil {
		return "", err
	}
	s.rw.RLock()
	defer s.rw.RUnlock()

	return s.configs[app], nil
}

// SaveConfig implements store.ConfigStore.
func (s *Storage) SaveConfig(ctx context.Context, app, text string) error {
	if err := store.ValidateAppID(app); err != nil {
		return err
	}
	s.rw.Lock()
	defer s.rw.Unlock()

	s.configs[app] = text
	return nil
}

// ListApps implements store.AppLister.
func (s *Storage) ListApps(ctx context.Context) ([]string, error) {
	s.rw.RLock()
	defer s.rw.RUnlock()

	apps := make([]string, 0, len(s.configs))
	for app := range s.configs {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	return apps, nil
}

// Close implements store.ConfigStore.
func (s *Storage) Close() error {
	return nil
}
