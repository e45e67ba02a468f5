package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"nestbase-go/internal/config"
	"nestbase-go/internal/database"
	"nestbase-go/internal/user"
)

// Server represents the HTTP server and its dependencies
type Server struct {
	config      *config.Config
	db          database.Service
	userHandler *user.Handler
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, db *database.DB) *Server {
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)

	return &Server{
		config:      cfg,
		db:          db,
		userHandler: user.NewHandler(userService),
	}
}

// Start builds the HTTP server bound to the validated PORT
func (s *Server) Start() *http.Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  s.config.IdleTimeout,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	log.Info().
		Int("port", s.config.Port).
		Str("node_env", s.config.NodeEnv.String()).
		Msg("Starting server")

	return srv
}

// sendJSON sends a JSON response with consistent formatting
func (s *Server) sendJSON(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: success,
		Message: message,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("Error encoding JSON response")
	}
}
