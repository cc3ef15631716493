package ports

import (
	"context"

	"github.com/bancobr/bank-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
//
// Create must enforce username uniqueness itself (e.g. via a unique index)
// and return domain.ErrUserExists on a conflict — callers may pre-check with
// FindByUsername, but the store is the authority under concurrent inserts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
