// Package session keeps the editing sessions of the console.
//
// A session owns one configdoc.Document loaded from the store. Sessions are
// shared between concurrent API requests, so every access to the document
// goes through Session.Do, which serializes callers per session.
package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maksimkurb/keen-console/src/internal/errors"
	"github.com/maksimkurb/keen-console/src/internal/log"
	"github.com/maksimkurb/keen-console/src/internal/store"
)

// Manager creates and tracks sessions.
type Manager struct {
	store store.ConfigStore
	ttl   time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager returns a Manager that loads and saves through st. Sessions
// idle for longer than ttl are removed by Sweep; a zero ttl keeps them
// until closed.
func NewManager(st store.ConfigStore, ttl time.Duration) *Manager {
	return &Manager{
		store:    st,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Open loads the configuration of app and starts a session for it.
func (m *Manager) Open(ctx context.Context, app string) (*Session, error) {
	if err := store.ValidateAppID(app); err != nil {
		return nil, errors.NewValidationError("invalid app", err)
	}

	text, err := m.store.LoadConfig(ctx, app)
	if err != nil {
		return nil, errors.NewStoreError("failed to load configuration of "+app, err)
	}

	s := newSession(uuid.NewString(), app, text, time.Now())

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	log.WithFields(log.Fields{"session": s.id, "app": app}).Debugf("Session opened")
	return s, nil
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, errors.NewSessionError("session not found: "+id, nil)
	}
	return s, nil
}

// Close discards the session with id and any unsaved changes.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return errors.NewSessionError("session not found: "+id, nil)
	}
	delete(m.sessions, id)

	log.WithFields(log.Fields{"session": id}).Debugf("Session closed")
	return nil
}

// Save submits the current text of the session to the store and reloads
// the document from what the store returns.
func (m *Manager) Save(ctx context.Context, id string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch(time.Now())
	text := s.doc.Text()
	if err := m.store.SaveConfig(ctx, s.app, text); err != nil {
		return errors.NewStoreError("failed to save configuration of "+s.app, err)
	}

	saved, err := m.store.LoadConfig(ctx, s.app)
	if err != nil {
		return errors.NewStoreError("failed to reload configuration of "+s.app, err)
	}
	s.load(saved)

	log.WithFields(log.Fields{"session": id, "app": s.app}).Infof("Configuration saved")
	return nil
}

// List returns all sessions, oldest first.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].created.Equal(list[j].created) {
			return list[i].id < list[j].id
		}
		return list[i].created.Before(list[j].created)
	})
	return list
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// Sweep removes sessions idle since before now minus the TTL and returns
// how many were removed.
func (m *Manager) Sweep(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}
	deadline := now.Add(-m.ttl)

	var expired []*Session
	for _, s := range m.List() {
		if s.idleSince().Before(deadline) {
			expired = append(expired, s)
		}
	}
	if len(expired) == 0 {
		return 0
	}

	m.mu.Lock()
	removed := 0
	for _, s := range expired {
		// a request may have used or closed it since the snapshot
		if m.sessions[s.id] == s && s.idleSince().Before(deadline) {
			delete(m.sessions, s.id)
			removed++
		}
	}
	m.mu.Unlock()

	if removed > 0 {
		log.Infof("Expired %d idle session(s)", removed)
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if m.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.Sweep(now)
		}
	}
}
