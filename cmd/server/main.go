package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ismailachter/soccerclubpro-vvc/internal/config"
	"github.com/ismailachter/soccerclubpro-vvc/internal/server"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	log := newLogger()
	cfg := config.Load(log)
	handler := server.New(cfg, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("mode", string(cfg.Mode)).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func newLogger() zerolog.Logger {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("VERCEL") == "" && os.Getenv("NODE_ENV") != "production" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return log
}
