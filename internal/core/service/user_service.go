package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
	"github.com/jgmedellin/coffee-shop-api/internal/core/ports"
)

// UserService implements account registration, login, and administration.
type UserService struct {
	users  ports.UserRepository
	orders ports.OrderRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, orders ports.OrderRepository, tokens ports.TokenService, logger zerolog.Logger) *UserService {
	return &UserService{users: users, orders: orders, tokens: tokens, logger: logger}
}

func (s *UserService) Register(ctx context.Context, email, password string) error {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if exists {
		return domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}

	s.logger.Info().Str("email", email).Str("role", string(user.Role)).Msg("user logged in")
	return token, nil
}

func (s *UserService) ChangeRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("change role: %w", err)
	}

	s.logger.Info().Str("email", email).Str("role", string(role)).Msg("user role changed")
	return updated, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Delete removes the user and all of its orders. The cascade is an explicit
// two-step delete: child orders first, then the account.
func (s *UserService) Delete(ctx context.Context, id int) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.orders.DeleteByCustomerEmail(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("delete user: cascade orders: %w", err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Int64("orders_removed", removed).Msg("user deleted")
	return nil
}

// UpdateSelf applies a partial profile update. Ownership cannot be expressed
// in the static policy table, so it is enforced here: the caller's email must
// resolve to exactly the id being updated.
func (s *UserService) UpdateSelf(ctx context.Context, callerEmail string, id int, in ports.UpdateUserInput) error {
	caller, err := s.users.FindByEmail(ctx, callerEmail)
	if err != nil || caller.ID != id {
		return domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("update user: hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.City != nil {
		user.City = *in.City
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	user.UpdatedAt = time.Now().UTC()

	if _, err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	s.logger.Info().Int("id", id).Msg("user profile updated")
	return nil
}
