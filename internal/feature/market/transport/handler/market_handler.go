// Package handler はmarketフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"easytrack_backend/internal/feature/market/domain/entity"
	"easytrack_backend/internal/feature/market/transport/http/dto"
	"easytrack_backend/internal/feature/market/usecase"
)

// MarketUsecase はマーケットデータ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketUsecase interface {
	GetQuote(ctx context.Context, symbol string) (float64, error)
	GetChart(ctx context.Context, symbol, period, period1, period2 string) ([]entity.PricePoint, error)
	GetDetails(ctx context.Context, symbol string) (*entity.StockDetails, error)
	GetFinancialSummary(ctx context.Context, symbol string) (*entity.FinancialSummary, error)
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

// MarketHandler はマーケットデータのHTTPリクエストを処理します。
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// GetQuote は銘柄の最新価格を返します。
//
// GET /api/stock?symbol=AAPL
func (h *MarketHandler) GetQuote(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock symbol is required"})
		return
	}

	price, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		// 上流の失敗理由は呼び出し元に区別させない
		slog.Error("failed to fetch stock quote", "error", err, "symbol", symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching stock data"})
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{Symbol: symbol, Price: price})
}

// GetChart は期間指定のチャートデータを返します。
// period1/period2（明示的な日付境界）が期間トークンより優先されます。
//
// GET /api/stock/chart?symbol=AAPL&period=1M
// GET /api/stock/chart?symbol=AAPL&period1=2024-01-01&period2=2024-03-01
func (h *MarketHandler) GetChart(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock symbol is required"})
		return
	}

	points, err := h.uc.GetChart(c.Request.Context(), symbol,
		c.Query("period"), c.Query("period1"), c.Query("period2"))
	if err != nil {
		slog.Error("failed to fetch stock chart", "error", err, "symbol", symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching stock chart data"})
		return
	}

	out := make([]dto.PricePointItem, 0, len(points))
	for _, p := range points {
		out = append(out, dto.PricePointItem{
			Date:   p.Date.Format(usecase.DateLayout),
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
		})
	}

	c.JSON(http.StatusOK, dto.ChartResponse{Symbol: symbol, ChartData: out})
}

// GetDetails は銘柄カード向けのサマリーフィールドを返します。
//
// GET /api/stock/details?symbol=AAPL
func (h *MarketHandler) GetDetails(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock symbol is required"})
		return
	}

	d, err := h.uc.GetDetails(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("failed to fetch stock details", "error", err, "symbol", symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching stock details"})
		return
	}

	c.JSON(http.StatusOK, dto.DetailsResponse{
		Symbol:             symbol,
		FiftyTwoWeekHigh:   d.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:    d.FiftyTwoWeekLow,
		MarketCap:          d.MarketCap,
		Volume:             d.Volume,
		TrailingPE:         d.TrailingPE,
		RegularMarketPrice: d.RegularMarketPrice,
		Name:               d.Name,
		CurrencySymbol:     d.CurrencySymbol,
	})
}

// GetFinancialSummary はファンダメンタルズのサマリーを返します。
//
// GET /api/stock/fsummary?symbol=AAPL
func (h *MarketHandler) GetFinancialSummary(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock symbol is required"})
		return
	}

	s, err := h.uc.GetFinancialSummary(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("failed to fetch financial summary", "error", err, "symbol", symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching financial data"})
		return
	}

	c.JSON(http.StatusOK, dto.FinancialSummaryResponse{
		Valuation: dto.ValuationGroup{
			TargetHighPrice:         s.Valuation.TargetHighPrice,
			TargetLowPrice:          s.Valuation.TargetLowPrice,
			TargetMeanPrice:         s.Valuation.TargetMeanPrice,
			RecommendationKey:       s.Valuation.RecommendationKey,
			RecommendationMean:      s.Valuation.RecommendationMean,
			CurrentPrice:            s.Valuation.CurrentPrice,
			NumberOfAnalystOpinions: s.Valuation.NumberOfAnalystOpinions,
		},
		Profitability: dto.ProfitabilityGroup{
			ReturnOnAssets: s.Profitability.ReturnOnAssets,
			ReturnOnEquity: s.Profitability.ReturnOnEquity,
			ProfitMargins:  s.Profitability.ProfitMargins,
			GrossMargins:   s.Profitability.GrossMargins,
			EbitdaMargins:  s.Profitability.EbitdaMargins,
		},
		Growth: dto.GrowthGroup{
			EarningsGrowth: s.Growth.EarningsGrowth,
			RevenueGrowth:  s.Growth.RevenueGrowth,
		},
		Liquidity: dto.LiquidityGroup{
			QuickRatio:   s.Liquidity.QuickRatio,
			DebtToEquity: s.Liquidity.DebtToEquity,
			CurrentRatio: s.Liquidity.CurrentRatio,
		},
		Operational: dto.OperationalGroup{
			TotalRevenue:      s.Operational.TotalRevenue,
			OperatingMargins:  s.Operational.OperatingMargins,
			FreeCashflow:      s.Operational.FreeCashflow,
			TotalCashPerShare: s.Operational.TotalCashPerShare,
			RevenuePerShare:   s.Operational.RevenuePerShare,
		},
	})
}

// Search はティッカー検索のサジェスト候補を返します。
// 検索の失敗はエラーステータスではなく空の結果として返します
// （サジェストUIを壊さないための仕様）。
//
// GET /api/stock/search?q=appl
func (h *MarketHandler) Search(c *gin.Context) {
	query := c.Query("q")

	results, err := h.uc.Search(c.Request.Context(), query)
	if err != nil {
		slog.Warn("symbol search failed", "error", err, "query", query)
		c.JSON(http.StatusOK, dto.SearchResponse{Results: []dto.SearchItem{}})
		return
	}

	out := make([]dto.SearchItem, 0, len(results))
	for _, r := range results {
		out = append(out, dto.SearchItem{Symbol: r.Symbol, Name: r.Name})
	}
	c.JSON(http.StatusOK, dto.SearchResponse{Results: out})
}
