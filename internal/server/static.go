package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ismailachter/soccerclubpro-vvc/internal/config"
)

// staticServer resolves request paths against the configured asset roots.
// It either serves a file or defers; it never produces a 404 itself.
type staticServer struct {
	roots []config.AssetRoot
	// devTS relabels TypeScript sources so browser tooling loads them as
	// typed modules instead of plain text (development only).
	devTS bool
}

func newStaticServer(cfg config.Config) *staticServer {
	return &staticServer{
		roots: cfg.AssetRoots,
		devTS: cfg.Mode == config.ModeDevelopment,
	}
}

// tryServe attempts to resolve the request against the asset roots in
// order. It returns true when a file was served and false when the request
// should fall through to the next dispatch stage.
func (s *staticServer) tryServe(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}

	// Clean with a rooted path so ".." cannot escape an asset root.
	reqPath := path.Clean("/" + r.URL.Path)
	for _, root := range s.roots {
		if !strings.HasPrefix(reqPath, root.URLPrefix) {
			continue
		}
		rel := strings.TrimPrefix(reqPath, root.URLPrefix)
		fsPath := filepath.Join(root.Dir, filepath.FromSlash(rel))
		info, err := os.Stat(fsPath)
		if err != nil || info.IsDir() {
			continue
		}
		s.setContentType(w, fsPath)
		http.ServeFile(w, r, fsPath)
		return true
	}
	return false
}

// setContentType overrides the declared type for module script extensions
// so browsers execute them instead of rendering text. ServeFile leaves an
// already-set Content-Type alone.
func (s *staticServer) setContentType(w http.ResponseWriter, fsPath string) {
	switch strings.ToLower(filepath.Ext(fsPath)) {
	case ".js", ".mjs":
		w.Header().Set("Content-Type", "application/javascript")
	case ".ts", ".tsx":
		if s.devTS {
			w.Header().Set("Content-Type", "application/typescript")
		}
	}
}
