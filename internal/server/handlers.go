package server

import (
	"net/http"
)

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	if health["status"] != "up" {
		s.sendJSON(w, http.StatusServiceUnavailable, false, "Database unavailable", health)
		return
	}
	s.sendJSON(w, http.StatusOK, true, "Health check successful", health)
}

func (s *Server) handleError404(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusNotFound, false, "Not found", nil)
}
