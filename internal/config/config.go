package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Mode is the deployment mode the process runs in. It is resolved once at
// startup and never changes for the lifetime of the process.
type Mode string

const (
	// ModeServerless means the serverless platform serves static assets itself
	// and we only answer API and fallback requests.
	ModeServerless Mode = "serverless"
	// ModeProduction serves the built frontend from the dist directory.
	ModeProduction Mode = "production"
	// ModeDevelopment serves frontend sources directly and redirects SPA
	// routes to the Vite dev server.
	ModeDevelopment Mode = "development"
)

// AssetRoot maps a URL prefix to a directory on disk.
type AssetRoot struct {
	URLPrefix string
	Dir       string
}

// Config holds everything derived from the environment at startup. It is
// built once in the entry point and passed by value; request handling never
// re-inspects the environment.
type Config struct {
	Mode         Mode
	Port         string
	DatabaseURL  string
	DevServerURL string

	// AllowedOrigins is the cross-origin allow-list for the active mode.
	// Exactly one set is active per mode; sets are never merged.
	AllowedOrigins []string

	// AssetRoots are tried in order by the static asset server.
	AssetRoots []AssetRoot

	// EntryFile is the bundled SPA entry served for unmatched non-API paths
	// in serverless and production modes.
	EntryFile string
}

// ResolveMode determines the deployment mode from environment signals,
// first match wins: the serverless platform indicator, then the production
// indicator, then development as the default. Absence of all signals is a
// valid input.
func ResolveMode(log zerolog.Logger) Mode {
	mode := ModeDevelopment
	switch {
	case os.Getenv("VERCEL") != "":
		mode = ModeServerless
	case os.Getenv("NODE_ENV") == "production":
		mode = ModeProduction
	}
	log.Info().Str("mode", string(mode)).Msg("resolved deployment mode")
	return mode
}

// Load resolves the deployment mode and builds the startup configuration.
func Load(log zerolog.Logger) Config {
	mode := ResolveMode(log)
	return Config{
		Mode:           mode,
		Port:           envOr("PORT", "5000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DevServerURL:   envOr("VITE_DEV_SERVER", "http://localhost:5173"),
		AllowedOrigins: originsFor(mode),
		AssetRoots:     assetRootsFor(mode),
		EntryFile:      filepath.Join("dist", "index.html"),
	}
}

func originsFor(mode Mode) []string {
	switch mode {
	case ModeServerless:
		return []string{
			"https://soccerclubpro-vvc.vercel.app",
		}
	case ModeProduction:
		return []string{
			"https://vvc.soccerclubpro.app",
			"https://www.vvc.soccerclubpro.app",
		}
	default:
		return []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
			"http://localhost:5000",
		}
	}
}

// assetRootsFor returns the static roots for a mode in lookup order. The
// uploads root is mounted in every mode; in serverless mode the platform
// serves the frontend itself, so uploads is the only root.
func assetRootsFor(mode Mode) []AssetRoot {
	uploads := AssetRoot{URLPrefix: "/uploads", Dir: "uploads"}
	switch mode {
	case ModeServerless:
		return []AssetRoot{uploads}
	case ModeProduction:
		return []AssetRoot{
			{URLPrefix: "/", Dir: "dist"},
			uploads,
		}
	default:
		return []AssetRoot{
			{URLPrefix: "/", Dir: "client"},
			{URLPrefix: "/node_modules", Dir: "node_modules"},
			uploads,
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
