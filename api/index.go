// Package handler is the serverless entry point. The platform imports this
// package and invokes Handler for every request; there is no main.
package handler

import (
	"net/http"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ismailachter/soccerclubpro-vvc/internal/config"
	"github.com/ismailachter/soccerclubpro-vvc/internal/server"
)

var (
	once sync.Once
	app  http.Handler
)

// Handler serves a single request, building the shared server on first use.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		log := zerolog.New(os.Stdout).With().Timestamp().Logger()
		app = server.New(config.Load(log), log)
	})
	app.ServeHTTP(w, r)
}
