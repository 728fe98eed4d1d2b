// Package remote provides a store.ConfigStore that reads and writes app
// configuration through the DNS/DHCP server API.
package remote

import (
	"context"

	"github.com/maksimkurb/keen-console/src/internal/remote"
	"github.com/maksimkurb/keen-console/src/internal/store"
)

// Storage is a store.ConfigStore backed by a remote.Client.
type Storage struct {
	client  *remote.Client
	session remote.Session
}

// New returns a Storage that calls client with session.
func New(client *remote.Client, session remote.Session) *Storage {
	return &Storage{client: client, session: session}
}

// LoadConfig implements store.ConfigStore
func (s *Storage) LoadConfig(ctx context.Context, app string) (string, error) {
	if err := store.ValidateAppID(app); err != nil {
		return "", err
	}
	return s.client.GetAppConfig(ctx, s.session, app)
}

// SaveConfig implements store.ConfigStore
func (s *Storage) SaveConfig(ctx context.Context, app, text string) error {
	if err := store.ValidateAppID(app); err != nil {
		return err
	}
	return s.client.SetAppConfig(ctx, s.session, app, text)
}

// ListApps implements store.AppLister
func (s *Storage) ListApps(ctx context.Context) ([]string, error) {
	return s.client.ListApps(ctx, s.session)
}

// ServerVersion implements store.ServerVersioner
func (s *Storage) ServerVersion(ctx context.Context) (string, error) {
	return s.client.ServerVersion(ctx, s.session)
}

// Close implements store.ConfigStore
func (s *Storage) Close() error {
	return nil
}
