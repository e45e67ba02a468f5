package user

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Service interface {
	// Greeting returns the API greeting including the current user count
	Greeting(ctx context.Context) (string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Greeting(ctx context.Context) (string, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to count users")
		return "", fmt.Errorf("%w: %w", ErrCountFailed, err)
	}

	log.Debug().Int64("users", count).Msg("Counted users")
	return fmt.Sprintf("Hello API. Users: %d", count), nil
}
