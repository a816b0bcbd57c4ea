// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"easytrack_backend/internal/feature/market/domain/entity"
	"easytrack_backend/internal/feature/market/usecase"
)

// CachingMarketRepository decorates a MarketRepository with Redis caching of
// chart series. Quotes, details, summaries, and searches pass straight
// through; only the comparatively heavy chart fetches are cached.
// All cache operations are best effort: a Redis failure never fails the
// request, it only costs an upstream round trip.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingMarketRepositoryがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "chart".
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "chart"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetChart retrieves a chart series, checking the cache first and falling
// back to the upstream provider on a miss.
func (c *CachingMarketRepository) GetChart(ctx context.Context, symbol string, window entity.TimeWindow) ([]entity.PricePoint, error) {
	if c.rdb == nil {
		return c.inner.GetChart(ctx, symbol, window)
	}

	key := c.cacheKey(symbol, window)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.PricePoint
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to upstream
	out, err := c.inner.GetChart(ctx, symbol, window)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// GetQuote delegates to the underlying repository.
func (c *CachingMarketRepository) GetQuote(ctx context.Context, symbol string) (float64, error) {
	return c.inner.GetQuote(ctx, symbol)
}

// GetDetails delegates to the underlying repository.
func (c *CachingMarketRepository) GetDetails(ctx context.Context, symbol string) (*entity.StockDetails, error) {
	return c.inner.GetDetails(ctx, symbol)
}

// GetFinancialSummary delegates to the underlying repository.
func (c *CachingMarketRepository) GetFinancialSummary(ctx context.Context, symbol string) (*entity.FinancialSummary, error) {
	return c.inner.GetFinancialSummary(ctx, symbol)
}

// Search delegates to the underlying repository.
func (c *CachingMarketRepository) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	return c.inner.Search(ctx, query)
}

// cacheKey generates a cache key for a chart query.
func (c *CachingMarketRepository) cacheKey(symbol string, window entity.TimeWindow) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		c.namespace,
		safe(symbol),
		window.Start.Format(usecase.DateLayout),
		window.End.Format(usecase.DateLayout),
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
