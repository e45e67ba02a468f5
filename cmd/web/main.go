package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"nestbase-go/internal/client"
	"nestbase-go/internal/config"
	"nestbase-go/internal/logger"
)

func main() {
	addr := flag.String("addr", ":5173", "listen address")
	dir := flag.String("dir", "dist", "directory with the built client bundle")
	envFile := flag.String("env", ".env", "optional env file")
	flag.Parse()

	logger.Init("development")

	raw, err := config.LoadDotEnv(false, *envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Error reading env file")
	}

	// Invalid env has already been reported on stderr
	cfg, err := client.Load(raw)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid client environment")
	}

	envHandler, err := client.NewHandler(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error preparing client environment")
	}

	r := chi.NewRouter()
	r.Use(logger.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Get("/env.json", envHandler.HandleEnvJSON)
	r.Get("/env.js", envHandler.HandleEnvScript)
	r.Handle("/*", http.FileServer(http.Dir(*dir)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Web server shutdown error")
		}
	}()

	log.Info().
		Str("addr", *addr).
		Str("api_url", cfg.APIURL).
		Msg("Serving client")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Web server error")
	}
}
