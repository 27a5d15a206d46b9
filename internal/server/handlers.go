package server

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	serviceName = "SoccerClubPro VVC"
	version     = "1.0.0"
)

// handleRoot returns the service identity document.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":   serviceName,
		"status":    "running",
		"version":   version,
		"timestamp": timestamp(),
		"club": map[string]any{
			"name":        "VVC",
			"description": "Club management platform for VVC: squads, training and matchday in one place",
			"features": []string{
				"tactical pad",
				"training database",
				"match center",
				"media library",
			},
		},
	})
}

// handleHealth reports liveness. The database flag only reflects whether a
// connection string was configured at startup; reachability is never probed.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	database := "not configured"
	if s.cfg.DatabaseURL != "" {
		database = "connected"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": timestamp(),
		"database":  database,
		"services": map[string]string{
			"tactical_pad":      "operational",
			"training_database": "operational",
			"media_library":     "operational",
		},
	})
}

// handleStatus returns deployment metadata and the module directory.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":     serviceName,
		"version":     version,
		"environment": string(s.cfg.Mode),
		"timestamp":   timestamp(),
		"modules": map[string]string{
			"tactical_pad":      "interactive drill and formation designer",
			"training_database": "exercise library with session planning",
			"match_center":      "fixtures, results and lineups",
			"media_library":     "club photos and match footage",
		},
	})
}

// handleVVC returns the static club and branding metadata.
func (s *Server) handleVVC(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"club":      "VVC",
		"full_name": "Voetbalvereniging VVC",
		"founded":   1928,
		"grounds":   "Sportpark De Zoom",
		"colors": map[string]string{
			"primary":   "#1d4ed8",
			"secondary": "#facc15",
		},
		"capabilities": []string{
			"team management",
			"tactical planning",
			"training sessions",
			"match scheduling",
		},
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
