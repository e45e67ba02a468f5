package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"nestbase-go/internal/config"
	"nestbase-go/internal/database"
	"nestbase-go/internal/database/migrate"
	"nestbase-go/internal/env"
	"nestbase-go/internal/logger"
)

const usage = `Usage: dbtool [-env path] <command>

Commands:
  up        apply all pending migrations
  down      roll back all migrations
  version   print the current schema version
`

func main() {
	envPath := flag.String("env", ".env", "env file holding DATABASE_URL")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger.Init("development")

	if err := run(*envPath, flag.Arg(0)); err != nil {
		log.Fatal().Err(err).Str("command", flag.Arg(0)).Msg("dbtool failed")
	}
}

func run(envPath, command string) error {
	raw, err := config.LoadDotEnv(true, envPath)
	if err != nil {
		return err
	}

	cfg, err := env.ValidateDbEnv(raw)
	if err != nil {
		return err
	}

	db, err := database.New(database.Options{URL: cfg.DatabaseURL})
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "up":
		return migrate.RunMigrations(db.DB)
	case "down":
		return migrate.RollbackMigrations(db.DB)
	case "version":
		version, dirty, ok, err := migrate.Version(db.DB)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("no migrations applied")
			return nil
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
