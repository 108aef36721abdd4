package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/minipay/ledger-api/internal/core/domain"
	"github.com/minipay/ledger-api/internal/core/ports"
)

type CatalogService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) AddProduct(ctx context.Context, name string, price float64, description string) (*domain.Product, error) {
	product, err := s.repo.Create(ctx, &domain.Product{
		Name:        name,
		Price:       price,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("product_id", product.ID).Str("name", name).Float64("price", price).Msg("product added")
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}
