// Package frontend serves the web UI of the console from disk.
package frontend

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultUIPath is the default path where frontend static files are installed.
const DefaultUIPath = "/opt/usr/share/keen-console/ui"

// indexFile is served for paths that do not name a file, so that the
// single-page UI can resolve its own routes.
const indexFile = "/index.html"

// safeFileSystem wraps http.Dir to prevent directory traversal attacks.
type safeFileSystem struct {
	root string
}

// Open implements http.FileSystem with path traversal protection.
func (fs safeFileSystem) Open(name string) (http.File, error) {
	// Clean the path to remove any . or .. components
	cleanPath := filepath.Clean(name)

	// Ensure the path doesn't escape the root
	if strings.HasPrefix(cleanPath, "..") || strings.Contains(cleanPath, "/../") {
		return nil, os.ErrNotExist
	}

	fullPath := filepath.Join(fs.root, cleanPath)

	absRoot, err := filepath.Abs(fs.root)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) && absPath != absRoot {
		return nil, os.ErrNotExist
	}

	return os.Open(fullPath)
}

// NewSafeFileSystem creates a new safe file system that prevents path traversal.
func NewSafeFileSystem(root string) http.FileSystem {
	return safeFileSystem{root: root}
}

// GetHTTPFileSystem returns an http.FileSystem for serving the frontend files
// from the specified path. It includes protection against path traversal attacks.
func GetHTTPFileSystem(uiPath string) http.FileSystem {
	return NewSafeFileSystem(uiPath)
}

// Handler serves the UI installed at uiPath. Requests for missing files
// without an extension get index.html.
func Handler(uiPath string) http.Handler {
	fsys := GetHTTPFileSystem(uiPath)
	files := http.FileServer(fsys)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if f, err := fsys.Open(name); err == nil {
			f.Close()
			files.ServeHTTP(w, r)
			return
		} else if !errors.Is(err, fs.ErrNotExist) || path.Ext(name) != "" {
			files.ServeHTTP(w, r)
			return
		}

		serveIndex(w, r, fsys)
	})
}

func serveIndex(w http.ResponseWriter, r *http.Request, fsys http.FileSystem) {
	index, err := fsys.Open(indexFile)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer index.Close()

	stat, err := index.Stat()
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, indexFile, stat.ModTime(), index)
}
