package ports

import (
	"context"

	"github.com/bancobr/bank-api/internal/core/domain"
)

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}
