package ports

import (
	"context"

	"github.com/minipay/ledger-api/internal/core/domain"
)

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
