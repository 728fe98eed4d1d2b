package store

import (
	"context"
	"sort"
	"sync"
)

// Factory creates a new ConfigStore from driver arguments.
type Factory func(args map[string]string) (ConfigStore, error)

var (
	factoriesMu sync.RWMutex
	factories   = map[string]Factory{}
)

// Register registers a new store factory.
func Register(name string, factory Factory) error {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	if _, ok := factories[name]; ok {
		return ErrAlreadyRegistered
	}
	factories[name] = factory
	return nil
}

// MustRegister registers a new store factory and panics on error.
func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

// Drivers returns the names of registered drivers in sorted order.
func Drivers() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open opens a ConfigStore using driver name.
func Open(name string, args map[string]string) (ConfigStore, error) {
	factoriesMu.RLock()
	factory, ok := factories[name]
	factoriesMu.RUnlock()

	if !ok {
		return nil, &ErrUnknownDriver{Name: name}
	}
	return factory(args)
}

// List returns the apps known to s, or ErrListUnsupported.
func List(ctx context.Context, s ConfigStore) ([]string, error) {
	lister, ok := s.(AppLister)
	if !ok {
		return nil, ErrListUnsupported
	}
	return lister.ListApps(ctx)
}
