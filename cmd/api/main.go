package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nestbase-go/internal/config"
	"nestbase-go/internal/database"
	"nestbase-go/internal/logger"
	"nestbase-go/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("nestbase api %s\n", formatVersionInfo())
		return
	}

	// Initialize logger first, NODE_ENV is not validated yet
	logger.Init("development")

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("API stopped")
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	raw, err := config.LoadDotEnv(false, ".env")
	if err != nil {
		return fmt.Errorf("reading env file: %w", err)
	}

	// Invalid env has already been reported on stderr
	cfg, err := config.Load(raw)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger.Init(cfg.NodeEnv.String())
	if cfg.LogLevel != "" {
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
	}

	log.Info().
		Str("node_env", cfg.NodeEnv.String()).
		Str("log_level", zerolog.GlobalLevel().String()).
		Str("version", version).
		Str("commit", commit).
		Str("built", date).
		Msg("Starting API")
	cfg.Log()

	db, err := database.New(database.Options{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database connection")
		}
	}()

	if health := db.Health(ctx); health["status"] != "up" {
		return fmt.Errorf("database health check failed: %s", health["error"])
	}

	httpServer := server.NewServer(cfg, db).Start()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-shutdown
		log.Info().Msg("Shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
		defer shutdownCancel()

		httpServer.SetKeepAlivesEnabled(false)

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}

		cancel()
	}()

	log.Info().Msgf("➜  API:   http://localhost:%d", cfg.Port)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	<-ctx.Done()
	log.Info().Msg("Server shutdown completed")
	return nil
}

func formatVersionInfo() string {
	return fmt.Sprintf(`Version: %s
Commit: %s
Built: %s`, version, commit, date)
}
