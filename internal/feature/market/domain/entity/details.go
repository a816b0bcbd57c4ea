package entity

// StockDetails holds the headline valuation fields shown on a stock card.
// All fields are optional: the provider omits whatever it has no data for.
type StockDetails struct {
	FiftyTwoWeekHigh   *float64
	FiftyTwoWeekLow    *float64
	MarketCap          *float64
	Volume             *int64
	TrailingPE         *float64
	RegularMarketPrice *float64
	Name               *string
	CurrencySymbol     *string
}
