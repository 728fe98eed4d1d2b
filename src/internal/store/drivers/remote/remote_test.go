package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/keen-console/src/internal/remote"
	"github.com/maksimkurb/keen-console/src/internal/store"
	"github.com/maksimkurb/keen-console/src/internal/store/storetest"
)

// newAppServer serves the app configuration operations from a map.
func newAppServer(t *testing.T, token string) *httptest.Server {
	var mu sync.Mutex
	configs := map[string]string{}

	reply := func(w http.ResponseWriter, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.Form.Get("token") != token {
			reply(w, map[string]string{"status": "invalid-token"})
			return
		}

		switch strings.TrimPrefix(r.URL.Path, "/api/") {
		case remote.OpListApps:
			apps := []map[string]string{}
			names := make([]string, 0, len(configs))
			for name := range configs {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				apps = append(apps, map[string]string{"name": name})
			}
			reply(w, map[string]interface{}{"status": "ok", "response": map[string]interface{}{"apps": apps}})
		case remote.OpGetAppConfig:
			reply(w, map[string]interface{}{"status": "ok", "response": map[string]interface{}{"config": configs[r.Form.Get("name")]}})
		case remote.OpGetSessionInfo:
			reply(w, map[string]interface{}{"status": "ok", "response": map[string]interface{}{"info": map[string]string{"version": "13.2"}}})
		case remote.OpSetAppConfig:
			configs[r.Form.Get("name")] = r.Form.Get("config")
			reply(w, map[string]string{"status": "ok"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteStorage(t *testing.T) {
	srv := newAppServer(t, "secret")

	factory := func(ctx context.Context) store.ConfigStore {
		s, err := storageFactory(map[string]string{"url": srv.URL, "token": "secret", "timeout": "5"})
		if err != nil {
			panic(err.Error())
		}
		return s
	}

	teardown := func(s store.ConfigStore) {
		s.Close()
	}

	storetest.Run(t, factory, teardown)
}

func TestInvalidToken(t *testing.T) {
	srv := newAppServer(t, "secret")

	s, err := store.Open("remote", map[string]string{"url": srv.URL, "token": "wrong"})
	require.NoError(t, err)

	_, err = s.LoadConfig(context.Background(), "Split Horizon")
	assert.ErrorIs(t, err, remote.ErrInvalidToken)
}

func TestServerVersion(t *testing.T) {
	srv := newAppServer(t, "secret")

	s, err := store.Open("remote", map[string]string{"url": srv.URL, "token": "secret"})
	require.NoError(t, err)

	versioner, ok := s.(store.ServerVersioner)
	require.True(t, ok)
	version, err := versioner.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "13.2", version)
}

func TestFactoryArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]string
		wantErr bool
	}{
		{"no url", map[string]string{}, true},
		{"bad timeout", map[string]string{"url": "http://localhost", "timeout": "soon"}, true},
		{"negative timeout", map[string]string{"url": "http://localhost", "timeout": "-1"}, true},
		{"bad template", map[string]string{"url": "http://localhost", "operation_path": "/api/{{operation"}, true},
		{"defaults", map[string]string{"url": "http://localhost"}, false},
		{"zero timeout", map[string]string{"url": "http://localhost", "timeout": "0"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storageFactory(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
