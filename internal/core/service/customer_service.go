package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bancobr/bank-api/internal/core/domain"
	"github.com/bancobr/bank-api/internal/core/ports"
)

type customerService struct {
	repo ports.CustomerRepository
}

// NewCustomerService returns a CustomerService implementation.
func NewCustomerService(repo ports.CustomerRepository) ports.CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, fullName, document, userID string) (*domain.Customer, error) {
	if len(document) != 11 {
		return nil, domain.ErrInvalidDocument
	}
	for _, r := range document {
		if r < '0' || r > '9' {
			return nil, domain.ErrInvalidDocument
		}
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		FullName:  fullName,
		Document:  document,
		Status:    domain.CustomerActive,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return created, nil
}

func (s *customerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}
