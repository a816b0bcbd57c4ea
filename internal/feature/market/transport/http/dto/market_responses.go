// Package dto defines data transfer objects for the market feature's HTTP transport layer.
package dto

// QuoteResponse is the latest-price payload for a symbol.
type QuoteResponse struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// PricePointItem は1営業日分のOHLCVのレスポンスDTOです。
// 上流に存在しなかったフィールドはJSONから省略されます。
type PricePointItem struct {
	Date   string   `json:"date"`             // 日付 (YYYY-MM-DD)
	Open   *float64 `json:"open,omitempty"`   // 始値
	High   *float64 `json:"high,omitempty"`   // 高値
	Low    *float64 `json:"low,omitempty"`    // 安値
	Close  *float64 `json:"close,omitempty"`  // 終値
	Volume *int64   `json:"volume,omitempty"` // 出来高
}

// ChartResponse is the chart series payload for a symbol.
type ChartResponse struct {
	Symbol    string           `json:"symbol"`
	ChartData []PricePointItem `json:"chartData"`
}

// DetailsResponse is the stock-card payload. Absent fields are omitted.
type DetailsResponse struct {
	Symbol             string   `json:"symbol"`
	FiftyTwoWeekHigh   *float64 `json:"fiftyTwoWeekHigh,omitempty"`
	FiftyTwoWeekLow    *float64 `json:"fiftyTwoWeekLow,omitempty"`
	MarketCap          *float64 `json:"marketCap,omitempty"`
	Volume             *int64   `json:"volume,omitempty"`
	TrailingPE         *float64 `json:"trailingPE,omitempty"`
	RegularMarketPrice *float64 `json:"regularMarketPrice,omitempty"`
	Name               *string  `json:"name,omitempty"`
	CurrencySymbol     *string  `json:"currencySymbol,omitempty"`
}

// FinancialSummaryResponse groups fundamentals the way the summary dialog
// renders them.
type FinancialSummaryResponse struct {
	Valuation     ValuationGroup     `json:"valuation"`
	Profitability ProfitabilityGroup `json:"profitability"`
	Growth        GrowthGroup        `json:"growth"`
	Liquidity     LiquidityGroup     `json:"liquidity"`
	Operational   OperationalGroup   `json:"operational"`
}

// ValuationGroup mirrors entity.Valuation for JSON rendering.
type ValuationGroup struct {
	TargetHighPrice         *float64 `json:"targetHighPrice,omitempty"`
	TargetLowPrice          *float64 `json:"targetLowPrice,omitempty"`
	TargetMeanPrice         *float64 `json:"targetMeanPrice,omitempty"`
	RecommendationKey       *string  `json:"recommendationKey,omitempty"`
	RecommendationMean      *float64 `json:"recommendationMean,omitempty"`
	CurrentPrice            *float64 `json:"currentPrice,omitempty"`
	NumberOfAnalystOpinions *int64   `json:"numberOfAnalystOpinions,omitempty"`
}

// ProfitabilityGroup mirrors entity.Profitability for JSON rendering.
type ProfitabilityGroup struct {
	ReturnOnAssets *float64 `json:"returnOnAssets,omitempty"`
	ReturnOnEquity *float64 `json:"returnOnEquity,omitempty"`
	ProfitMargins  *float64 `json:"profitMargins,omitempty"`
	GrossMargins   *float64 `json:"grossMargins,omitempty"`
	EbitdaMargins  *float64 `json:"ebitdaMargins,omitempty"`
}

// GrowthGroup mirrors entity.Growth for JSON rendering.
type GrowthGroup struct {
	EarningsGrowth *float64 `json:"earningsGrowth,omitempty"`
	RevenueGrowth  *float64 `json:"revenueGrowth,omitempty"`
}

// LiquidityGroup mirrors entity.Liquidity for JSON rendering.
type LiquidityGroup struct {
	QuickRatio   *float64 `json:"quickRatio,omitempty"`
	DebtToEquity *float64 `json:"debtToEquity,omitempty"`
	CurrentRatio *float64 `json:"currentRatio,omitempty"`
}

// OperationalGroup mirrors entity.Operational for JSON rendering.
type OperationalGroup struct {
	TotalRevenue      *float64 `json:"totalRevenue,omitempty"`
	OperatingMargins  *float64 `json:"operatingMargins,omitempty"`
	FreeCashflow      *float64 `json:"freeCashflow,omitempty"`
	TotalCashPerShare *float64 `json:"totalCashPerShare,omitempty"`
	RevenuePerShare   *float64 `json:"revenuePerShare,omitempty"`
}

// SearchItem is one ticker suggestion.
type SearchItem struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SearchResponse wraps the suggestion list for the search bar.
type SearchResponse struct {
	Results []SearchItem `json:"results"`
}
