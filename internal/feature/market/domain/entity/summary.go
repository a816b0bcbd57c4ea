package entity

// FinancialSummary groups the fundamental fields of a symbol the way the
// summary dialog presents them. Every numeric field is optional.
type FinancialSummary struct {
	Valuation     Valuation
	Profitability Profitability
	Growth        Growth
	Liquidity     Liquidity
	Operational   Operational
}

// Valuation covers analyst price targets and recommendations.
type Valuation struct {
	TargetHighPrice         *float64
	TargetLowPrice          *float64
	TargetMeanPrice         *float64
	RecommendationKey       *string
	RecommendationMean      *float64
	CurrentPrice            *float64
	NumberOfAnalystOpinions *int64
}

// Profitability covers margin and return ratios.
type Profitability struct {
	ReturnOnAssets *float64
	ReturnOnEquity *float64
	ProfitMargins  *float64
	GrossMargins   *float64
	EbitdaMargins  *float64
}

// Growth covers year-over-year growth rates.
type Growth struct {
	EarningsGrowth *float64
	RevenueGrowth  *float64
}

// Liquidity covers balance-sheet health ratios.
type Liquidity struct {
	QuickRatio   *float64
	DebtToEquity *float64
	CurrentRatio *float64
}

// Operational covers revenue and cash-flow figures.
type Operational struct {
	TotalRevenue      *float64
	OperatingMargins  *float64
	FreeCashflow      *float64
	TotalCashPerShare *float64
	RevenuePerShare   *float64
}
