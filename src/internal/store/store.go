// Package store persists app configuration text.
//
// A ConfigStore is opened by driver name through the registry in this
// package. Drivers register themselves from their init functions; import
// store/drivers/all to make every built-in driver available.
package store

import (
	"context"
	"unicode"
)

// MaxAppIDLength is the longest accepted app ID.
const MaxAppIDLength = 255

// ConfigStore loads and saves the configuration text of an app.
//
// Implementations store the text exactly as given and never interpret it.
type ConfigStore interface {
	// LoadConfig returns the stored text of app. An app without stored
	// configuration returns an empty string and no error.
	LoadConfig(ctx context.Context, app string) (string, error)

	// SaveConfig replaces the stored text of app.
	SaveConfig(ctx context.Context, app, text string) error

	// Close releases resources held by the store.
	Close() error
}

// AppLister is implemented by stores that can enumerate their apps.
type AppLister interface {
	ListApps(ctx context.Context) ([]string, error)
}

// ServerVersioner is implemented by stores backed by a server that reports
// its version.
type ServerVersioner interface {
	ServerVersion(ctx context.Context) (string, error)
}

// ValidateAppID reports whether app can be used as a store key.
func ValidateAppID(app string) error {
	if app == "" {
		return &ErrInvalidAppID{App: app, Reason: "must not be empty"}
	}
	if len(app) > MaxAppIDLength {
		return &ErrInvalidAppID{App: app, Reason: "too long"}
	}
	for _, r := range app {
		if unicode.IsControl(r) {
			return &ErrInvalidAppID{App: app, Reason: "contains control characters"}
		}
	}
	return nil
}
