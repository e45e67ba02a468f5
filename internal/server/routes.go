package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"nestbase-go/internal/env"
	"nestbase-go/internal/logger"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logger.RequestLogger)
	r.Use(middleware.Recoverer)

	if s.config.NodeEnv == env.Development {
		r.Use(middleware.NoCache)
	}

	// Reflect any origin and allow credentials
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, _ string) bool {
			return true
		},
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           s.config.CORSMaxAge,
	}))

	r.NotFound(s.handleError404)

	r.Get("/", s.userHandler.HandleHello)
	r.Get("/health", s.healthHandler)

	return r
}
