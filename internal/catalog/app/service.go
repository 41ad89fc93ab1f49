package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/tshirt-store/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrCatalogUnavailable means the catalog document is missing or
	// malformed. Fatal to product display, not to an in-progress cart.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// ListProducts returns the catalog in declaration order; that order is
// also the display order.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}
