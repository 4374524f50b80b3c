package ports

import (
	"context"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

// CreateOrderInput carries a new order request. ItemRefs are string product
// ids; refs that fail to parse or resolve are dropped, not errors.
type CreateOrderInput struct {
	CustomerEmail string
	ItemRefs      []string
	TotalAmount   float64
}

type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	// GetMine returns the ids of the caller's orders.
	GetMine(ctx context.Context, callerEmail string) ([]string, error)
	// GetAll returns orders, optionally filtered by owner email, truncated to
	// size entries when size > 0.
	GetAll(ctx context.Context, size int, email string) ([]domain.Order, error)
	// GetOne enforces ownership: a non-elevated caller may only read orders
	// whose customer email equals their own.
	GetOne(ctx context.Context, id, callerEmail string, callerRole domain.Role) (*domain.Order, error)
	// Update always overwrites the status. A nil itemRefs leaves the product
	// list untouched; a non-nil slice is re-resolved like Create.
	Update(ctx context.Context, id string, status domain.OrderStatus, itemRefs []string) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
