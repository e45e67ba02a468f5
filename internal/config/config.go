package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"nestbase-go/internal/env"
	"nestbase-go/internal/validation"
)

// Config holds the API process configuration
type Config struct {
	env.ServerConfig
	Runtime
}

// Runtime holds operational settings that have safe defaults
type Runtime struct {
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"1m" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s" validate:"gt=0"`

	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25" validate:"gt=0"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5" validate:"gte=0"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m" validate:"gt=0"`

	CORSMaxAge int `env:"CORS_MAX_AGE" envDefault:"300" validate:"gte=0"`
}

// Load validates the server environment and reads runtime settings from raw
func Load(raw env.Raw) (*Config, error) {
	server, err := env.ValidateServerEnv(raw)
	if err != nil {
		return nil, err
	}

	var runtime Runtime
	if err := envparse.ParseWithOptions(&runtime, envparse.Options{Environment: raw}); err != nil {
		log.Error().Err(err).Msg("invalid runtime configuration")
		return nil, fmt.Errorf("parsing runtime configuration: %w", err)
	}

	if err := validation.Validate(&runtime); err != nil {
		for _, fe := range validation.FormatError(err) {
			log.Error().Str("field", fe.Field).Msg(fe.Error)
		}
		return nil, fmt.Errorf("invalid runtime configuration: %w", err)
	}

	return &Config{
		ServerConfig: server,
		Runtime:      runtime,
	}, nil
}

// LoadDotEnv reads the given .env files, later files overriding earlier ones,
// and overlays the process environment on top. A missing file is an error
// only when required is set.
func LoadDotEnv(required bool, paths ...string) (env.Raw, error) {
	raw := make(env.Raw)

	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && !required {
				log.Debug().Str("path", path).Msg("no env file found, skipping")
				continue
			}
			return nil, fmt.Errorf("reading env file %s: %w", path, err)
		}
		for k, v := range values {
			raw[k] = v
		}
	}

	for k, v := range env.FromOS() {
		raw[k] = v
	}

	return raw, nil
}

func (c *Config) Log() {
	log.Info().
		Int("port", c.Port).
		Str("node_env", c.NodeEnv.String()).
		Str("database_url", redactURL(c.DatabaseURL)).
		Dur("read_timeout", c.ReadTimeout).
		Dur("write_timeout", c.WriteTimeout).
		Dur("shutdown_timeout", c.ShutdownTimeout).
		Int("db_max_open_conns", c.DBMaxOpenConns).
		Msg("server configuration")
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable>"
	}
	return u.Redacted()
}
