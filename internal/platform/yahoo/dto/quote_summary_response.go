package dto

// Value mirrors Yahoo's {raw, fmt} wrapper around numeric fields.
// Only the raw number is consumed; Raw stays nil when the field is absent.
type Value struct {
	Raw *float64 `json:"raw"`
}

// IntValue mirrors the {raw, fmt} wrapper for integer fields.
type IntValue struct {
	Raw *int64 `json:"raw"`
}

// QuoteSummaryResponse represents the JSON response from the v10
// quoteSummary endpoint. Only the modules this application requests
// (summaryDetail, price, financialData) are modeled.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *APIError            `json:"error"`
	} `json:"quoteSummary"`
}

// QuoteSummaryResult is one symbol's set of requested modules. Modules not
// requested come back nil.
type QuoteSummaryResult struct {
	SummaryDetail *SummaryDetail `json:"summaryDetail"`
	Price         *Price         `json:"price"`
	FinancialData *FinancialData `json:"financialData"`
}

// SummaryDetail is the subset of the summaryDetail module consumed here.
type SummaryDetail struct {
	FiftyTwoWeekHigh Value    `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  Value    `json:"fiftyTwoWeekLow"`
	MarketCap        Value    `json:"marketCap"`
	Volume           IntValue `json:"volume"`
	TrailingPE       Value    `json:"trailingPE"`
}

// Price is the subset of the price module consumed here.
type Price struct {
	RegularMarketPrice Value   `json:"regularMarketPrice"`
	ShortName          *string `json:"shortName"`
	CurrencySymbol     *string `json:"currencySymbol"`
}

// FinancialData is the subset of the financialData module consumed here.
type FinancialData struct {
	TargetHighPrice         Value    `json:"targetHighPrice"`
	TargetLowPrice          Value    `json:"targetLowPrice"`
	TargetMeanPrice         Value    `json:"targetMeanPrice"`
	RecommendationKey       *string  `json:"recommendationKey"`
	RecommendationMean      Value    `json:"recommendationMean"`
	CurrentPrice            Value    `json:"currentPrice"`
	NumberOfAnalystOpinions IntValue `json:"numberOfAnalystOpinions"`

	ReturnOnAssets Value `json:"returnOnAssets"`
	ReturnOnEquity Value `json:"returnOnEquity"`
	ProfitMargins  Value `json:"profitMargins"`
	GrossMargins   Value `json:"grossMargins"`
	EbitdaMargins  Value `json:"ebitdaMargins"`

	EarningsGrowth Value `json:"earningsGrowth"`
	RevenueGrowth  Value `json:"revenueGrowth"`

	QuickRatio   Value `json:"quickRatio"`
	DebtToEquity Value `json:"debtToEquity"`
	CurrentRatio Value `json:"currentRatio"`

	TotalRevenue      Value `json:"totalRevenue"`
	OperatingMargins  Value `json:"operatingMargins"`
	FreeCashflow      Value `json:"freeCashflow"`
	TotalCashPerShare Value `json:"totalCashPerShare"`
	RevenuePerShare   Value `json:"revenuePerShare"`
}
