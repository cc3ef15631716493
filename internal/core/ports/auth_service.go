package ports

import (
	"context"

	"github.com/bancobr/bank-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
