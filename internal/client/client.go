// Package client prepares the environment handed to the browser bundle.
// Only VITE_-prefixed variables are ever exposed.
package client

import (
	"strings"

	"github.com/rs/zerolog/log"

	"nestbase-go/internal/env"
	"nestbase-go/internal/validation"
)

// Prefix marks variables that may be shipped to the browser
const Prefix = "VITE_"

// Expose returns the subset of raw visible to client code
func Expose(raw env.Raw) env.Raw {
	exposed := make(env.Raw)
	for k, v := range raw {
		if strings.HasPrefix(k, Prefix) {
			exposed[k] = v
		}
	}
	return exposed
}

// Load validates the exposed client environment
func Load(raw env.Raw) (env.ClientConfig, error) {
	cfg, err := env.ValidateClientEnv(Expose(raw))
	if err != nil {
		return env.ClientConfig{}, err
	}

	if err := validation.ValidateWebURL(cfg.APIURL); err != nil {
		log.Warn().
			Str(env.KeyAPIURL, cfg.APIURL).
			Msg("API URL is not an http(s) URL, browser requests may fail")
	}

	return cfg, nil
}
