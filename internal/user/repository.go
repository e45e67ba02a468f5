package user

import (
	"context"

	"nestbase-go/internal/database"
)

// Repository defines the user repository interface
type Repository interface {
	// Count returns the number of rows in the user table
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	*database.Repository
}

// NewRepository creates a new user repository
func NewRepository(db *database.DB) Repository {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Get(ctx, &count, `SELECT COUNT(*) FROM "user"`); err != nil {
		return 0, r.Error("count", err)
	}
	return count, nil
}
