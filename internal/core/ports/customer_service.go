package ports

import (
	"context"

	"github.com/bancobr/bank-api/internal/core/domain"
)

type CustomerService interface {
	Create(ctx context.Context, fullName, document, userID string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}
