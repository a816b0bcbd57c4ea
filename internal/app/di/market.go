// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	marketusecase "easytrack_backend/internal/feature/market/usecase"
	"easytrack_backend/internal/platform/cache"
	infrahttp "easytrack_backend/internal/platform/http"
	"easytrack_backend/internal/platform/yahoo"
	"easytrack_backend/internal/shared/ratelimiter"
)

// yahooRequestsPerMinute はYahoo公開エンドポイントへの外向き呼び出しの
// 自主的な上限です。
const yahooRequestsPerMinute = 60

// NewMarket creates the Yahoo-backed market repository with its HTTP client
// and outbound rate limiter. When a Redis client is available, chart fetches
// are wrapped with the read-through cache; with rdb == nil the repository
// talks to the provider directly.
func NewMarket(rdb *redis.Client) marketusecase.MarketRepository {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(yahooRequestsPerMinute, time.Minute)
	market := yahoo.NewYahooMarket(cfg, httpClient, limiter)

	if rdb == nil {
		return market
	}
	return cache.NewCachingMarketRepository(rdb, 5*time.Minute, market, "chart")
}
