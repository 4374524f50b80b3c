package ports

import (
	"context"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

// OrderRepository defines the persistence interface for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	// DeleteByCustomerEmail removes every order owned by the given email and
	// returns the number of orders removed. Used by the user cascade delete.
	DeleteByCustomerEmail(ctx context.Context, email string) (int64, error)
}
