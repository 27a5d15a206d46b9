// Package server is the HTTP front door: it dispatches requests to the JSON
// status endpoints, the static asset server or the SPA fallback, wrapped in
// the fixed policy chain.
package server

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/ismailachter/soccerclubpro-vvc/internal/config"
	"github.com/ismailachter/soccerclubpro-vvc/internal/middleware"
)

// maxBodyBytes is the request body ceiling (10 MB).
const maxBodyBytes = 10 << 20

// Server binds the startup configuration to the request handlers.
type Server struct {
	cfg    config.Config
	log    zerolog.Logger
	static *staticServer
}

// apiRoutes is the fixed route table. It feeds both route registration and
// the API-miss directory, so the 404 payload cannot drift from the
// registered set.
var apiRoutes = []string{
	"/api/health",
	"/api/status",
	"/api/vvc",
}

// New builds the complete request handling chain for the given
// configuration. The returned handler is safe for concurrent use; all
// request-visible state is read-only after this call.
func New(cfg config.Config, log zerolog.Logger) http.Handler {
	s := &Server{
		cfg:    cfg,
		log:    log,
		static: newStaticServer(cfg),
	}

	apiHandlers := map[string]http.HandlerFunc{
		"/api/health": s.handleHealth,
		"/api/status": s.handleStatus,
		"/api/vvc":    s.handleVVC,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	for _, path := range apiRoutes {
		r.HandleFunc(path, apiHandlers[path]).Methods(http.MethodGet)
	}
	r.PathPrefix("/api/").HandlerFunc(s.handleAPIMiss)
	r.PathPrefix("/").HandlerFunc(s.handleFallback)

	// Policy chain, innermost listed first. Ordering constraints: the body
	// ceiling must wrap dispatch so no handler reads an unlimited body, the
	// origin check must run before any handler, and the panic boundary is
	// outermost so it also covers the policies themselves.
	var h http.Handler = r
	h = middleware.MaxBody(maxBodyBytes)(h)
	h = middleware.CORS(cfg.AllowedOrigins)(h)
	h = handlers.CompressHandler(h)
	h = middleware.SecurityHeaders(middleware.SecurityHeaderOptions{})(h)
	h = middleware.AccessLog(log)(h)
	h = middleware.RequestID(h)
	h = middleware.Recover(log, cfg.Mode == config.ModeDevelopment)(h)
	return h
}
