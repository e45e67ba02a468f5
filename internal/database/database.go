package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Service is what the HTTP layer needs from the database
type Service interface {
	Health(ctx context.Context) map[string]string
	Close() error
}

// DB represents a database instance and implements Service
type DB struct {
	*sqlx.DB
}

// Options holds the connection URL and pool settings
type Options struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// New creates a new database connection from a validated DATABASE_URL
func New(opts Options) (*DB, error) {
	db, err := sqlx.Connect("pgx", opts.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return &DB{DB: db}, nil
}

// Health returns database health information
func (db *DB) Health(ctx context.Context) map[string]string {
	stats := make(map[string]string)

	if err := db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("database ping failed: %v", err)
		return stats
	}

	dbStats := db.Stats()
	stats["status"] = "up"
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	stats["idle"] = fmt.Sprintf("%d", dbStats.Idle)

	return stats
}

// Close closes the database connection
func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("closing database connection: %w", err)
	}
	log.Info().Msg("Database connection closed")
	return nil
}
