package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jgmedellin/coffee-shop-api/internal/api/metrics"
	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

const catalogKey = "catalog:products"

// CatalogCache caches the full product listing under a single Redis key.
// Cache failures are logged and treated as misses so a Redis outage degrades
// to repository reads instead of failing requests.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewCatalogCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached product list, or ok=false on miss or error.
func (c *CatalogCache) Get(ctx context.Context) ([]domain.Product, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Msg("catalog cache read failed")
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache payload corrupt")
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return products, true
}

// Set stores the product list with the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache encode failed")
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache write failed")
	}
}

// Invalidate drops the cached listing after any catalog mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache invalidate failed")
	}
}
