package user

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// HandleHello writes the greeting as plain text
func (h *Handler) HandleHello(w http.ResponseWriter, r *http.Request) {
	greeting, err := h.service.Greeting(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrCountFailed) {
			status = http.StatusServiceUnavailable
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(greeting)); err != nil {
		log.Error().Err(err).Msg("Error writing greeting")
	}
}
