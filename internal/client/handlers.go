package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"nestbase-go/internal/env"
)

// Handler serves the validated client environment
type Handler struct {
	payload []byte
}

func NewHandler(cfg env.ClientConfig) (*Handler, error) {
	payload, err := json.Marshal(cfg.Values())
	if err != nil {
		return nil, fmt.Errorf("encoding client env: %w", err)
	}
	return &Handler{payload: payload}, nil
}

// HandleEnvJSON serves the env as a JSON object
func (h *Handler) HandleEnvJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(h.payload); err != nil {
		log.Error().Err(err).Msg("Error writing client env")
	}
}

// HandleEnvScript serves the env as a script assigning window.__ENV__
func (h *Handler) HandleEnvScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := fmt.Fprintf(w, "window.__ENV__ = Object.freeze(%s);\n", h.payload); err != nil {
		log.Error().Err(err).Msg("Error writing client env script")
	}
}
