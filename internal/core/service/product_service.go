package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
	"github.com/jgmedellin/coffee-shop-api/internal/core/ports"
)

// CatalogCache abstracts the read-through cache for the full product list
// (Redis in production). A nil-safe no-op implementation is acceptable.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, bool)
	Set(ctx context.Context, products []domain.Product)
	Invalidate(ctx context.Context)
}

// ProductService implements catalog management.
type ProductService struct {
	repo   ports.ProductRepository
	cache  CatalogCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache CatalogCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

// CreateMany validates the whole batch before any insert so the operation is
// all-or-nothing: duplicate names within the request or names that already
// exist in the store reject the entire batch.
func (s *ProductService) CreateMany(ctx context.Context, inputs []ports.CreateProductInput) ([]domain.Product, error) {
	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.Name]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateNames, in.Name)
		}
		seen[in.Name] = struct{}{}
	}

	for _, in := range inputs {
		exists, err := s.repo.ExistsByName(ctx, in.Name)
		if err != nil {
			return nil, fmt.Errorf("create products: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductExists, in.Name)
		}
	}

	now := time.Now().UTC()
	products := make([]domain.Product, 0, len(inputs))
	for _, in := range inputs {
		products = append(products, domain.Product{
			Name:          in.Name,
			Description:   in.Description,
			Price:         in.Price,
			Category:      in.Category,
			Images:        in.Images,
			IsBestSeller:  in.IsBestSeller,
			IsRecommended: in.IsRecommended,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	created, err := s.repo.CreateMany(ctx, products)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create products")
		return nil, fmt.Errorf("create products: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info().Int("count", len(created)).Msg("products created")
	return created, nil
}

func (s *ProductService) GetAll(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.Get(ctx); ok {
			return products, nil
		}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, products)
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id int, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.IsBestSeller != nil {
		product.IsBestSeller = *in.IsBestSeller
	}
	if in.IsRecommended != nil {
		product.IsRecommended = *in.IsRecommended
	}
	product.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info().Int("id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info().Int("id", id).Msg("product deleted")
	return nil
}
