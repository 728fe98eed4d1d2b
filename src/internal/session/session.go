package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/maksimkurb/keen-console/src/internal/configdoc"
	"github.com/maksimkurb/keen-console/src/internal/formview"
	"github.com/maksimkurb/keen-console/src/internal/hashing"
	"github.com/maksimkurb/keen-console/src/internal/jsontree"
)

// Session is one open editor for the configuration of an app.
type Session struct {
	id      string
	app     string
	created time.Time

	mu      sync.Mutex
	doc     *configdoc.Document
	toggles map[string]bool
	saved   string // checksum of the text last loaded from the store

	// lastUsed is read without mu so that sweeping never waits for a
	// session busy in a store call.
	lastUsed atomic.Int64 // unix nanoseconds
}

// View is a snapshot of a session for presentation.
type View struct {
	ID       string          `json:"id"`
	AppID    string          `json:"app_id"`
	State    configdoc.State `json:"state"`
	Message  string          `json:"message,omitempty"`
	Text     string          `json:"text"`
	Revision uint64          `json:"revision"`
	Modified bool            `json:"modified"`
	Created  time.Time       `json:"created"`
	LastUsed time.Time       `json:"last_used"`
	Form     *formview.Field `json:"form,omitempty"`
}

func newSession(id, app, text string, now time.Time) *Session {
	s := &Session{
		id:      id,
		app:     app,
		created: now,
		toggles: make(map[string]bool),
	}
	s.touch(now)
	s.load(text)
	return s
}

// load replaces the document with text as read from the store.
func (s *Session) load(text string) {
	s.doc = configdoc.Open(text)
	s.saved = hashing.TextChecksum(s.doc.Text())
}

func (s *Session) ID() string { return s.id }

func (s *Session) App() string { return s.app }

// Do runs fn with the session's document under the session lock.
func (s *Session) Do(fn func(doc *configdoc.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch(time.Now())
	return fn(s.doc)
}

// Toggle records whether the container at path is shown expanded.
func (s *Session) Toggle(path jsontree.Path, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.toggles[path.String()] = open
}

// Modified reports whether the text differs from what was last loaded.
func (s *Session) Modified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.modified()
}

func (s *Session) modified() bool {
	return hashing.TextChecksum(s.doc.Text()) != s.saved
}

// View returns a snapshot of the session. The form is included only when
// withForm is set and the document is valid.
func (s *Session) View(withForm bool) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:       s.id,
		AppID:    s.app,
		State:    s.doc.State(),
		Message:  s.doc.Message(),
		Text:     s.doc.Text(),
		Revision: s.doc.Revision(),
		Modified: s.modified(),
		Created:  s.created,
		LastUsed: s.idleSince(),
	}
	if withForm {
		v.Form = s.doc.Form(formview.WithToggles(s.toggles))
	}
	return v
}

func (s *Session) touch(now time.Time) {
	s.lastUsed.Store(now.UnixNano())
}

func (s *Session) idleSince() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}
