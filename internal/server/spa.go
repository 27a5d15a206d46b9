package server

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/ismailachter/soccerclubpro-vvc/internal/config"
)

// fallbackHTML is served when the bundled entry file cannot be read. It
// renders a loading placeholder so the client is never shown a raw error.
const fallbackHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>SoccerClubPro VVC</title>
<style>
body { font-family: sans-serif; display: flex; align-items: center; justify-content: center; height: 100vh; margin: 0; background: #1d4ed8; color: #fff; }
.box { text-align: center; }
</style>
</head>
<body>
<div class="box">
<h1>SoccerClubPro VVC</h1>
<p>Loading the club platform&hellip;</p>
</div>
</body>
</html>
`

// handleFallback is the terminal stage for non-API paths: try the static
// asset roots first, then hand over to the SPA strategy for the active mode.
func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	if s.static.tryServe(w, r) {
		return
	}
	s.serveSPA(w, r)
}

// handleAPIMiss answers unmatched paths under the API namespace with the
// route directory.
func (s *Server) handleAPIMiss(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":            "Not Found",
		"message":          fmt.Sprintf("API route %s does not exist", r.URL.Path),
		"available_routes": apiRoutes,
	})
}

// serveSPA applies the mode's fallback strategy: redirect to the dev server
// in development, otherwise serve the bundled entry file and fall back to
// inline markup when it cannot be read.
func (s *Server) serveSPA(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Mode == config.ModeDevelopment {
		target := s.cfg.DevServerURL + r.URL.Path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		return
	}

	// Stat before serving so a missing or unreadable entry reliably takes
	// the inline fallback path instead of surfacing an error.
	if info, err := os.Stat(s.cfg.EntryFile); err == nil && !info.IsDir() {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeFile(w, r, s.cfg.EntryFile)
		return
	}

	s.log.Warn().Str("entry", s.cfg.EntryFile).Msg("SPA entry unavailable, serving inline fallback")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, fallbackHTML)
}
