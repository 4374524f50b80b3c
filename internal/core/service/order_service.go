package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
	"github.com/jgmedellin/coffee-shop-api/internal/core/ports"
)

// OrderService implements the order workflow.
type OrderService struct {
	orders   ports.OrderRepository
	users    ports.UserRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, users ports.UserRepository, products ports.ProductRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, products: products, logger: logger}
}

// resolveLines parses and looks up each product ref independently.
// Unparseable or unresolvable refs are dropped, not errors; duplicates are
// preserved. Returns domain.ErrNoUsableProducts when nothing resolves.
func (s *OrderService) resolveLines(ctx context.Context, refs []string) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, 0, len(refs))
	for _, ref := range refs {
		id, err := strconv.Atoi(ref)
		if err != nil {
			continue
		}
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			continue
		}
		lines = append(lines, domain.OrderLine{ProductID: product.ID, Name: product.Name})
	}
	if len(lines) == 0 {
		return nil, domain.ErrNoUsableProducts
	}
	return lines, nil
}

func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	user, err := s.users.FindByEmail(ctx, in.CustomerEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderCustomer, in.CustomerEmail)
	}

	lines, err := s.resolveLines(ctx, in.ItemRefs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &domain.Order{
		CustomerEmail: user.Email,
		Products:      lines,
		// Total is taken verbatim from the caller, never recomputed from
		// resolved product prices.
		TotalAmount: in.TotalAmount,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("customer", in.CustomerEmail).Msg("failed to create order")
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info().Str("order_id", created.ID).Str("customer", created.CustomerEmail).Int("items", len(created.Products)).Msg("order created")
	return created, nil
}

func (s *OrderService) GetMine(ctx context.Context, callerEmail string) ([]string, error) {
	if _, err := s.users.FindByEmail(ctx, callerEmail); err != nil {
		return nil, err
	}

	orders, err := s.orders.FindByCustomerEmail(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrNoOrders
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids, nil
}

func (s *OrderService) GetAll(ctx context.Context, size int, email string) ([]domain.Order, error) {
	var (
		orders []domain.Order
		err    error
	)
	if email != "" {
		orders, err = s.orders.FindByCustomerEmail(ctx, email)
	} else {
		orders, err = s.orders.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrNoOrders
	}

	if size > 0 && len(orders) > size {
		orders = orders[:size]
	}
	return orders, nil
}

func (s *OrderService) GetOne(ctx context.Context, id, callerEmail string, callerRole domain.Role) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !callerRole.Elevated() && order.CustomerEmail != callerEmail {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, id string, status domain.OrderStatus, itemRefs []string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidOrderState
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Transitions are unconstrained: any status may overwrite any other.
	order.Status = status

	if itemRefs != nil {
		lines, err := s.resolveLines(ctx, itemRefs)
		if err != nil {
			return nil, err
		}
		order.Products = lines
	}
	order.UpdatedAt = time.Now().UTC()

	updated, err := s.orders.Update(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order")
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.logger.Info().Str("order_id", id).Str("status", string(status)).Msg("order updated")
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}
