package ports

import (
	"context"

	"github.com/minipay/ledger-api/internal/core/domain"
)

type CatalogService interface {
	AddProduct(ctx context.Context, name string, price float64, description string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
