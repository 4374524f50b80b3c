package ports

import (
	"context"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

// ProductRepository defines the persistence interface for catalog entries.
type ProductRepository interface {
	CreateMany(ctx context.Context, products []domain.Product) ([]domain.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}
