package frontend

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUI(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>console</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))
	return dir
}

func TestSafeFileSystem_Traversal(t *testing.T) {
	dir := writeUI(t)
	fsys := NewSafeFileSystem(filepath.Join(dir, "assets"))

	_, err := fsys.Open("../index.html")
	assert.ErrorIs(t, err, os.ErrNotExist)

	f, err := fsys.Open("/app.js")
	require.NoError(t, err)
	f.Close()
}

func TestHandler(t *testing.T) {
	h := Handler(writeUI(t))

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/assets/app.js", http.StatusOK, "console.log(1)"},
		{"/sessions/1234", http.StatusOK, "<html>console</html>"},
		{"/assets/missing.js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}
