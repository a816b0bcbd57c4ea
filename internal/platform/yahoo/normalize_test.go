package yahoo

import (
	"testing"
	"time"

	"easytrack_backend/internal/platform/yahoo/dto"
)

func f(v float64) *float64 { return &v }
func i(v int64) *int64     { return &v }

// TestNormalizeChart_LengthAndValuesPreserved は出力件数が生のバー数と
// 一致し、数値フィールドが無変換でコピーされることを検証します。
func TestNormalizeChart_LengthAndValuesPreserved(t *testing.T) {
	t.Parallel()

	result := &dto.ChartResult{
		Timestamp: []int64{1709251200, 1709337600, 1709596800},
	}
	result.Indicators.Quote = []dto.QuoteIndicator{{
		Open:   []*float64{f(100.5), f(102.0), f(101.25)},
		High:   []*float64{f(103.0), f(104.5), f(102.75)},
		Low:    []*float64{f(99.0), f(101.0), f(100.0)},
		Close:  []*float64{f(102.0), f(101.5), f(102.5)},
		Volume: []*int64{i(1000000), i(2000000), i(1500000)},
	}}

	points := normalizeChart(result)

	if len(points) != len(result.Timestamp) {
		t.Fatalf("expected %d points, got %d", len(result.Timestamp), len(points))
	}

	// 順序が保存されること
	for idx := 1; idx < len(points); idx++ {
		if !points[idx-1].Date.Before(points[idx].Date) {
			t.Errorf("points out of order at index %d", idx)
		}
	}

	// 値が無変換でコピーされること（往復同一性）
	quote := result.Indicators.Quote[0]
	for idx, p := range points {
		if *p.Open != *quote.Open[idx] || *p.High != *quote.High[idx] ||
			*p.Low != *quote.Low[idx] || *p.Close != *quote.Close[idx] ||
			*p.Volume != *quote.Volume[idx] {
			t.Errorf("point %d: values not copied verbatim: %+v", idx, p)
		}
	}

	if expected := time.Unix(1709251200, 0).UTC(); !points[0].Date.Equal(expected) {
		t.Errorf("expected date %v, got %v", expected, points[0].Date)
	}
}

// TestNormalizeChart_AbsentFieldsStayNil は上流でnullのフィールドが
// ゼロ値に潰されずnilのまま伝播することを検証します。
func TestNormalizeChart_AbsentFieldsStayNil(t *testing.T) {
	t.Parallel()

	result := &dto.ChartResult{Timestamp: []int64{1709251200, 1709337600}}
	result.Indicators.Quote = []dto.QuoteIndicator{{
		Open:   []*float64{f(100.0), nil},
		High:   []*float64{f(101.0), nil},
		Low:    []*float64{nil, nil},
		Close:  []*float64{f(100.5)}, // 配列がタイムスタンプ軸より短い
		Volume: nil,
	}}

	points := normalizeChart(result)

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Low != nil || points[0].Volume != nil {
		t.Error("expected nil for absent fields on first point")
	}
	if points[1].Open != nil || points[1].Close != nil {
		t.Error("expected nil for absent fields on second point")
	}
	if points[0].Open == nil || *points[0].Open != 100.0 {
		t.Error("present fields must survive normalization")
	}
}

// TestNormalizeChart_NoIndicators はquote配列自体が欠けていても
// タイムスタンプごとに1ポイント生成されることを検証します。
func TestNormalizeChart_NoIndicators(t *testing.T) {
	t.Parallel()

	result := &dto.ChartResult{Timestamp: []int64{1709251200}}

	points := normalizeChart(result)
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].Open != nil || points[0].Volume != nil {
		t.Error("expected all nil value fields without indicators")
	}
}

// TestNormalizeSearch_FiltersNonEquities は株式以外の候補と
// Yahoo Finance非上場の候補が除外されることを検証します。
func TestNormalizeSearch_FiltersNonEquities(t *testing.T) {
	t.Parallel()

	quotes := []dto.SearchQuote{
		{Symbol: "AAPL", ShortName: "Apple Inc.", QuoteType: "EQUITY", IsYahooFinance: true},
		{Symbol: "AAPL240621C00100000", ShortName: "AAPL Call", QuoteType: "OPTION", IsYahooFinance: true},
		{Symbol: "SPY", ShortName: "SPDR S&P 500", QuoteType: "ETF", IsYahooFinance: true},
		{Symbol: "PRIVATE", ShortName: "Private Co", QuoteType: "EQUITY", IsYahooFinance: false},
		{Symbol: "MSFT", LongName: "Microsoft Corporation", QuoteType: "EQUITY", IsYahooFinance: true},
	}

	results := normalizeSearch(quotes)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %+v", len(results), results)
	}
	if results[0].Symbol != "AAPL" || results[0].Name != "Apple Inc." {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	// shortnameがない場合はlongnameにフォールバック
	if results[1].Symbol != "MSFT" || results[1].Name != "Microsoft Corporation" {
		t.Errorf("unexpected second result: %+v", results[1])
	}
}

// TestNormalizeSearch_UnknownName は名前が一切ない候補にプレースホルダが
// 設定されることを検証します。
func TestNormalizeSearch_UnknownName(t *testing.T) {
	t.Parallel()

	results := normalizeSearch([]dto.SearchQuote{
		{Symbol: "XXXX", QuoteType: "EQUITY", IsYahooFinance: true},
	})
	if len(results) != 1 || results[0].Name != "Unknown" {
		t.Errorf("expected Unknown placeholder, got %+v", results)
	}
}

// TestNormalizeDetails_PartialModules は片方のモジュールしか返らなくても
// 取得できたフィールドだけが埋まることを検証します。
func TestNormalizeDetails_PartialModules(t *testing.T) {
	t.Parallel()

	name := "Apple Inc."
	result := &dto.QuoteSummaryResult{
		Price: &dto.Price{
			RegularMarketPrice: dto.Value{Raw: f(187.42)},
			ShortName:          &name,
		},
	}

	d := normalizeDetails(result)

	if d.RegularMarketPrice == nil || *d.RegularMarketPrice != 187.42 {
		t.Error("expected regular market price from price module")
	}
	if d.Name == nil || *d.Name != name {
		t.Error("expected name from price module")
	}
	if d.FiftyTwoWeekHigh != nil || d.MarketCap != nil {
		t.Error("expected nil fields for missing summaryDetail module")
	}
}

// TestNormalizeFinancialSummary_MissingModule はfinancialDataモジュールが
// ない場合に全フィールドがnilのサマリーが返ることを検証します。
func TestNormalizeFinancialSummary_MissingModule(t *testing.T) {
	t.Parallel()

	s := normalizeFinancialSummary(&dto.QuoteSummaryResult{})
	if s.Valuation.CurrentPrice != nil || s.Growth.RevenueGrowth != nil {
		t.Error("expected empty summary for missing financialData")
	}
}
