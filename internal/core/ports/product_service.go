package ports

import (
	"context"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

// CreateProductInput is a single catalog entry in a batch-create request.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         float64
	Category      domain.ProductCategory
	Images        []string
	IsBestSeller  bool
	IsRecommended bool
}

// UpdateProductInput carries the mutable fields of a product. Nil fields
// leave the stored value untouched; a non-nil Images slice replaces the list.
type UpdateProductInput struct {
	Description   *string
	Price         *float64
	Images        []string
	IsBestSeller  *bool
	IsRecommended *bool
}

type ProductService interface {
	// CreateMany persists the whole batch or nothing: duplicate names within
	// the batch or names already stored reject the entire request.
	CreateMany(ctx context.Context, inputs []CreateProductInput) ([]domain.Product, error)
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	Update(ctx context.Context, id int, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}
