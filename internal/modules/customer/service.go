package customer

import (
	"context"

	"github.com/sirupsen/logrus"

	"sportsinventory/internal/domain"
	"sportsinventory/internal/pkg/logger"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Customer, error) {
	c := req.toDomain()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).WithFields(logrus.Fields{
		"customer_id": c.ID,
	}).Info("customer registered")
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// List pages through customers in id order. page is 1-based.
func (s *Service) List(ctx context.Context, page, limit int) ([]domain.Customer, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	return s.repo.List(ctx, limit, (page-1)*limit)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(c)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete fails with ErrReferentialIntegrity while any sale or penalty
// still points at the customer.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).WithField("customer_id", id).Info("customer deleted")
	return nil
}
