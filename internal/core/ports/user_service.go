package ports

import (
	"context"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

// UpdateUserInput carries the partial-update payload for a profile update.
// Nil fields leave the stored value untouched.
type UpdateUserInput struct {
	Password *string
	Username *string
	Phone    *string
	Address  *string
	City     *string
	Avatar   *string
}

type UserService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	ChangeRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	Delete(ctx context.Context, id int) error
	// UpdateSelf applies a partial profile update. The authenticated caller's
	// email must resolve to exactly the id being updated.
	UpdateSelf(ctx context.Context, callerEmail string, id int, in UpdateUserInput) error
}
