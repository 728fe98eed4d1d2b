package session

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/keen-console/src/internal/configdoc"
	"github.com/maksimkurb/keen-console/src/internal/errors"
	"github.com/maksimkurb/keen-console/src/internal/jsontree"
	"github.com/maksimkurb/keen-console/src/internal/jsonvalue"
	"github.com/maksimkurb/keen-console/src/internal/store/drivers/memory"
)

type failingStore struct {
	*memory.Storage
}

func (failingStore) SaveConfig(context.Context, string, string) error {
	return stderrors.New("disk full")
}

func newManager(t *testing.T, configs map[string]string) (*Manager, *memory.Storage) {
	t.Helper()
	st := memory.Seed(configs)
	return NewManager(st, time.Minute), st
}

func TestOpen(t *testing.T) {
	m, _ := newManager(t, map[string]string{"Split Horizon": `{"enable":true,"list":[1,2]}`})

	s, err := m.Open(context.Background(), "Split Horizon")
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, "Split Horizon", s.App())

	v := s.View(true)
	assert.Equal(t, configdoc.StateValid, v.State)
	assert.Equal(t, "{\n  \"enable\": true,\n  \"list\": [\n    1,\n    2\n  ]\n}", v.Text)
	assert.False(t, v.Modified, "pretty-printing on open is not a modification")
	require.NotNil(t, v.Form)
	assert.Len(t, v.Form.Children, 2)
}

func TestOpen_MissingAppIsEmpty(t *testing.T) {
	m, _ := newManager(t, nil)

	s, err := m.Open(context.Background(), "New App")
	require.NoError(t, err)

	v := s.View(true)
	assert.Equal(t, configdoc.StateEmpty, v.State)
	assert.Nil(t, v.Form)
}

func TestOpen_InvalidApp(t *testing.T) {
	m, _ := newManager(t, nil)

	_, err := m.Open(context.Background(), "")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestGetAndClose(t *testing.T) {
	m, _ := newManager(t, nil)
	s, err := m.Open(context.Background(), "App")
	require.NoError(t, err)

	got, err := m.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, m.Close(s.ID()))
	_, err = m.Get(s.ID())
	assert.True(t, errors.HasCode(err, errors.ErrCodeSession))
	assert.True(t, errors.HasCode(m.Close(s.ID()), errors.ErrCodeSession))
}

func TestSave(t *testing.T) {
	m, st := newManager(t, map[string]string{"App": `{"a":1}`})
	ctx := context.Background()

	s, err := m.Open(ctx, "App")
	require.NoError(t, err)

	err = s.Do(func(doc *configdoc.Document) error {
		return doc.Apply(jsontree.Set(jsontree.NewPath("a"), jsonvalue.IntValue(2)))
	})
	require.NoError(t, err)
	assert.True(t, s.Modified())

	require.NoError(t, m.Save(ctx, s.ID()))
	assert.False(t, s.Modified())

	text, err := st.LoadConfig(ctx, "App")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 2\n}", text)
}

func TestSave_RawTextIsSubmittedVerbatim(t *testing.T) {
	m, st := newManager(t, nil)
	ctx := context.Background()

	s, err := m.Open(ctx, "App")
	require.NoError(t, err)

	require.NoError(t, s.Do(func(doc *configdoc.Document) error {
		doc.SetText(`{"a":`)
		return nil
	}))
	require.NoError(t, m.Save(ctx, s.ID()))

	text, err := st.LoadConfig(ctx, "App")
	require.NoError(t, err)
	assert.Equal(t, `{"a":`, text)
	assert.Equal(t, configdoc.StateInvalid, s.View(false).State)
}

func TestSave_StoreFailureKeepsChanges(t *testing.T) {
	m := NewManager(failingStore{memory.Seed(map[string]string{"App": `{"a":1}`})}, time.Minute)
	ctx := context.Background()

	s, err := m.Open(ctx, "App")
	require.NoError(t, err)
	require.NoError(t, s.Do(func(doc *configdoc.Document) error {
		return doc.Apply(jsontree.Set(jsontree.NewPath("a"), jsonvalue.IntValue(5)))
	}))

	err = m.Save(ctx, s.ID())
	assert.True(t, errors.HasCode(err, errors.ErrCodeStore))
	assert.True(t, s.Modified())
	assert.Contains(t, s.View(false).Text, "5")
}

func TestSave_UnknownSession(t *testing.T) {
	m, _ := newManager(t, nil)
	assert.True(t, errors.HasCode(m.Save(context.Background(), "nope"), errors.ErrCodeSession))
}

func TestToggle(t *testing.T) {
	m, _ := newManager(t, map[string]string{"App": `{"a":{"b":{"c":1}}}`})
	s, err := m.Open(context.Background(), "App")
	require.NoError(t, err)

	b := jsontree.NewPath("a", "b")
	assert.False(t, s.View(true).Form.Children[0].Children[0].Open)

	s.Toggle(b, true)
	assert.True(t, s.View(true).Form.Children[0].Children[0].Open)
}

func TestList(t *testing.T) {
	m, _ := newManager(t, nil)
	ctx := context.Background()

	first, err := m.Open(ctx, "One")
	require.NoError(t, err)
	second, err := m.Open(ctx, "Two")
	require.NoError(t, err)

	list := m.List()
	require.Len(t, list, 2)
	assert.ElementsMatch(t, []string{first.ID(), second.ID()}, []string{list[0].ID(), list[1].ID()})
	assert.Equal(t, 2, m.Len())
}

func TestSweep(t *testing.T) {
	m, _ := newManager(t, nil)
	ctx := context.Background()

	idle, err := m.Open(ctx, "Idle")
	require.NoError(t, err)
	_, err = m.Open(ctx, "Busy")
	require.NoError(t, err)

	assert.Equal(t, 0, m.Sweep(time.Now()))

	later := time.Now().Add(2 * time.Minute)
	// touch only one of the sessions
	for _, s := range m.List() {
		if s.App() == "Busy" {
			s.touch(later)
		}
	}

	assert.Equal(t, 1, m.Sweep(later))
	_, err = m.Get(idle.ID())
	assert.Error(t, err)
	assert.Equal(t, 1, m.Len())
}

// slowStore blocks SaveConfig until release is closed.
type slowStore struct {
	*memory.Storage
	saving  chan struct{}
	release chan struct{}
}

func (s *slowStore) SaveConfig(ctx context.Context, app, text string) error {
	close(s.saving)
	<-s.release
	return s.Storage.SaveConfig(ctx, app, text)
}

func TestSweep_DoesNotWaitForSave(t *testing.T) {
	st := &slowStore{
		Storage: memory.New(),
		saving:  make(chan struct{}),
		release: make(chan struct{}),
	}
	m := NewManager(st, time.Minute)
	ctx := context.Background()

	saving, err := m.Open(ctx, "Saving")
	require.NoError(t, err)
	other, err := m.Open(ctx, "Other")
	require.NoError(t, err)

	saved := make(chan error, 1)
	go func() { saved <- m.Save(ctx, saving.ID()) }()
	<-st.saving

	swept := make(chan int, 1)
	go func() { swept <- m.Sweep(time.Now().Add(30 * time.Second)) }()

	select {
	case n := <-swept:
		assert.Zero(t, n)
	case <-time.After(time.Second):
		t.Fatal("sweep waited for a session busy saving")
	}

	got := make(chan error, 1)
	go func() {
		_, err := m.Get(other.ID())
		got <- err
	}()
	select {
	case err := <-got:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("get waited for a session busy saving")
	}

	close(st.release)
	require.NoError(t, <-saved)
}

func TestSweep_ExpiresSessionBusySaving(t *testing.T) {
	st := &slowStore{
		Storage: memory.New(),
		saving:  make(chan struct{}),
		release: make(chan struct{}),
	}
	m := NewManager(st, time.Minute)
	ctx := context.Background()

	s, err := m.Open(ctx, "Saving")
	require.NoError(t, err)

	saved := make(chan error, 1)
	go func() { saved <- m.Save(ctx, s.ID()) }()
	<-st.saving

	done := make(chan int, 1)
	go func() { done <- m.Sweep(time.Now().Add(2 * time.Minute)) }()
	select {
	case n := <-done:
		assert.Equal(t, 1, n)
	case <-time.After(time.Second):
		t.Fatal("sweep waited for a session busy saving")
	}
	assert.Zero(t, m.Len())

	close(st.release)
	require.NoError(t, <-saved)
}

func TestSweep_ZeroTTL(t *testing.T) {
	m := NewManager(memory.New(), 0)
	_, err := m.Open(context.Background(), "App")
	require.NoError(t, err)

	assert.Equal(t, 0, m.Sweep(time.Now().Add(24*time.Hour)))
}

func TestRun_StopsOnCancel(t *testing.T) {
	m, _ := newManager(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestDo_Serialized(t *testing.T) {
	m, _ := newManager(t, map[string]string{"App": `{"items":[]}`})
	s, err := m.Open(context.Background(), "App")
	require.NoError(t, err)

	items := jsontree.NewPath("items")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(func(doc *configdoc.Document) error {
				return doc.Apply(jsontree.Insert(items, jsonvalue.IntValue(1)))
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.Do(func(doc *configdoc.Document) error {
		root, ok := doc.Root()
		require.True(t, ok)
		v, _ := root.Lookup("items")
		assert.Equal(t, 20, v.Len())
		return nil
	}))
	assert.Equal(t, uint64(20), s.View(false).Revision)
}
