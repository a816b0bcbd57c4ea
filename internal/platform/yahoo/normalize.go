package yahoo

import (
	"time"

	"easytrack_backend/internal/feature/market/domain/entity"
	"easytrack_backend/internal/platform/yahoo/dto"
)

// normalizeChart projects raw chart bars into the canonical PricePoint
// series: one point per timestamp, order preserved, numeric values copied
// verbatim. A null upstream value stays nil; there is no gap filling,
// resampling, or unit conversion.
func normalizeChart(result *dto.ChartResult) []entity.PricePoint {
	var quote dto.QuoteIndicator
	if len(result.Indicators.Quote) > 0 {
		quote = result.Indicators.Quote[0]
	}

	points := make([]entity.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		points = append(points, entity.PricePoint{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   at(quote.Open, i),
			High:   at(quote.High, i),
			Low:    at(quote.Low, i),
			Close:  at(quote.Close, i),
			Volume: at(quote.Volume, i),
		})
	}
	return points
}

// at returns the i-th element of an indicator array, or nil when the array
// is shorter than the timestamp axis.
func at[T any](xs []*T, i int) *T {
	if i >= len(xs) {
		return nil
	}
	return xs[i]
}

// normalizeDetails maps the summaryDetail and price modules onto StockDetails.
func normalizeDetails(result *dto.QuoteSummaryResult) *entity.StockDetails {
	d := &entity.StockDetails{}
	if sd := result.SummaryDetail; sd != nil {
		d.FiftyTwoWeekHigh = sd.FiftyTwoWeekHigh.Raw
		d.FiftyTwoWeekLow = sd.FiftyTwoWeekLow.Raw
		d.MarketCap = sd.MarketCap.Raw
		d.Volume = sd.Volume.Raw
		d.TrailingPE = sd.TrailingPE.Raw
	}
	if p := result.Price; p != nil {
		d.RegularMarketPrice = p.RegularMarketPrice.Raw
		d.Name = p.ShortName
		d.CurrencySymbol = p.CurrencySymbol
	}
	return d
}

// normalizeFinancialSummary maps the financialData module onto the grouped
// FinancialSummary shape.
func normalizeFinancialSummary(result *dto.QuoteSummaryResult) *entity.FinancialSummary {
	s := &entity.FinancialSummary{}
	fd := result.FinancialData
	if fd == nil {
		return s
	}
	s.Valuation = entity.Valuation{
		TargetHighPrice:         fd.TargetHighPrice.Raw,
		TargetLowPrice:          fd.TargetLowPrice.Raw,
		TargetMeanPrice:         fd.TargetMeanPrice.Raw,
		RecommendationKey:       fd.RecommendationKey,
		RecommendationMean:      fd.RecommendationMean.Raw,
		CurrentPrice:            fd.CurrentPrice.Raw,
		NumberOfAnalystOpinions: fd.NumberOfAnalystOpinions.Raw,
	}
	s.Profitability = entity.Profitability{
		ReturnOnAssets: fd.ReturnOnAssets.Raw,
		ReturnOnEquity: fd.ReturnOnEquity.Raw,
		ProfitMargins:  fd.ProfitMargins.Raw,
		GrossMargins:   fd.GrossMargins.Raw,
		EbitdaMargins:  fd.EbitdaMargins.Raw,
	}
	s.Growth = entity.Growth{
		EarningsGrowth: fd.EarningsGrowth.Raw,
		RevenueGrowth:  fd.RevenueGrowth.Raw,
	}
	s.Liquidity = entity.Liquidity{
		QuickRatio:   fd.QuickRatio.Raw,
		DebtToEquity: fd.DebtToEquity.Raw,
		CurrentRatio: fd.CurrentRatio.Raw,
	}
	s.Operational = entity.Operational{
		TotalRevenue:      fd.TotalRevenue.Raw,
		OperatingMargins:  fd.OperatingMargins.Raw,
		FreeCashflow:      fd.FreeCashflow.Raw,
		TotalCashPerShare: fd.TotalCashPerShare.Raw,
		RevenuePerShare:   fd.RevenuePerShare.Raw,
	}
	return s
}

// normalizeSearch filters raw search candidates down to equities listed on
// Yahoo Finance and projects them onto SearchResult.
func normalizeSearch(quotes []dto.SearchQuote) []entity.SearchResult {
	out := make([]entity.SearchResult, 0, len(quotes))
	for _, q := range quotes {
		if q.QuoteType != "EQUITY" || !q.IsYahooFinance {
			continue
		}
		name := q.ShortName
		if name == "" {
			name = q.LongName
		}
		if name == "" {
			name = "Unknown"
		}
		out = append(out, entity.SearchResult{Symbol: q.Symbol, Name: name})
	}
	return out
}
