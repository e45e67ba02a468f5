package migrate

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func newMigrator(db *sqlx.DB) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create postgres driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not create source driver: %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs", d,
		"postgres", driver,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return m, nil
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		log.Warn().
			AnErr("source_error", srcErr).
			AnErr("database_error", dbErr).
			Msg("closing migrator")
	}
}

// RunMigrations applies all pending migrations
func RunMigrations(db *sqlx.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("No migrations to run")
		return nil
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("could not get migration version: %w", err)
	}

	log.Info().
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Migrations completed")
	return nil
}

// RollbackMigrations rolls back all applied migrations
func RollbackMigrations(db *sqlx.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	err = m.Down()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not rollback migrations: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("No migrations to rollback")
		return nil
	}

	log.Info().Msg("Migration rollback completed")
	return nil
}

// Version reports the current schema version; ok is false before the first migration
func Version(db *sqlx.DB) (version uint, dirty bool, ok bool, err error) {
	m, err := newMigrator(db)
	if err != nil {
		return 0, false, false, err
	}
	defer closeMigrator(m)

	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("could not get migration version: %w", err)
	}
	return version, dirty, true, nil
}
