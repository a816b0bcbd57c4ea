package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"easytrack_backend/internal/feature/market/domain/entity"
	"easytrack_backend/internal/feature/market/usecase"
	"easytrack_backend/internal/platform/yahoo/dto"
)

// Limiter は外向きリクエストの頻度を制御します。
// Goの慣例に従い、インターフェースはコンシューマー（このパッケージ）が定義します。
type Limiter interface {
	WaitIfNeeded()
}

// YahooMarket はYahoo Finance公開APIから株価データを取得する
// MarketRepository実装です。
type YahooMarket struct {
	cfg     Config
	client  *http.Client
	limiter Limiter
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの
// 新しいインスタンスを生成します。limiterはnil可（無制限）です。
func NewYahooMarket(cfg Config, client *http.Client, limiter Limiter) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client, limiter: limiter}
}

// getJSON はGETリクエストを実行してJSONレスポンスをoutにデコードします。
func (y *YahooMarket) getJSON(ctx context.Context, u string, out any) error {
	if y.limiter != nil {
		y.limiter.WaitIfNeeded()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	// 公開エンドポイントはブラウザ以外のデフォルトUAを拒否することがある
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := y.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("yahoo http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// fetchChart はv8 chartエンドポイントを呼び出し、最初のresultを返します。
func (y *YahooMarket) fetchChart(ctx context.Context, symbol string, q url.Values) (*dto.ChartResult, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	var body dto.ChartResponse
	if err := y.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo chart: empty result for %q", symbol)
	}
	return &body.Chart.Result[0], nil
}

// GetQuote は銘柄の直近の取引価格を取得します。
// chartエンドポイントのmetaブロックから価格を読み取ります。
func (y *YahooMarket) GetQuote(ctx context.Context, symbol string) (float64, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", "1d")

	result, err := y.fetchChart(ctx, symbol, q)
	if err != nil {
		return 0, err
	}
	if result.Meta.RegularMarketPrice == nil {
		return 0, fmt.Errorf("yahoo quote: no market price for %q", symbol)
	}
	return *result.Meta.RegularMarketPrice, nil
}

// GetChart は期間内の日足OHLCVバーを取得し、正規化済みの
// PricePoint列として返します。期間境界は各日付のUTC深夜0時の
// UNIX秒としてワイヤ上にシリアライズされます。
func (y *YahooMarket) GetChart(ctx context.Context, symbol string, window entity.TimeWindow) ([]entity.PricePoint, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", strconv.FormatInt(window.Start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(window.End.Unix(), 10))
	q.Set("events", "history")

	result, err := y.fetchChart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}
	return normalizeChart(result), nil
}

// fetchQuoteSummary はv10 quoteSummaryエンドポイントを呼び出し、
// 最初のresultを返します。
func (y *YahooMarket) fetchQuoteSummary(ctx context.Context, symbol, modules string) (*dto.QuoteSummaryResult, error) {
	q := url.Values{}
	q.Set("modules", modules)
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	var body dto.QuoteSummaryResponse
	if err := y.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo quoteSummary: %s", body.QuoteSummary.Error.Description)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo quoteSummary: empty result for %q", symbol)
	}
	return &body.QuoteSummary.Result[0], nil
}

// GetDetails は銘柄カード向けのサマリーフィールドを取得します。
// summaryDetailとpriceの2モジュールを1リクエストで要求します。
func (y *YahooMarket) GetDetails(ctx context.Context, symbol string) (*entity.StockDetails, error) {
	result, err := y.fetchQuoteSummary(ctx, symbol, "summaryDetail,price")
	if err != nil {
		return nil, err
	}
	return normalizeDetails(result), nil
}

// GetFinancialSummary はfinancialDataモジュールからファンダメンタルズの
// サマリーを取得します。
func (y *YahooMarket) GetFinancialSummary(ctx context.Context, symbol string) (*entity.FinancialSummary, error) {
	result, err := y.fetchQuoteSummary(ctx, symbol, "financialData")
	if err != nil {
		return nil, err
	}
	return normalizeFinancialSummary(result), nil
}

// Search はティッカー/企業名のあいまい検索を行います。
// 株式（EQUITY）かつYahoo Finance上場の候補のみを返します。
func (y *YahooMarket) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", strconv.Itoa(usecase.MaxSearchResults))
	q.Set("newsCount", "0")
	q.Set("enableFuzzyQuery", "true")
	u := fmt.Sprintf("%s/v1/finance/search?%s", y.cfg.BaseURL, q.Encode())

	var body dto.SearchResponse
	if err := y.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	return normalizeSearch(body.Quotes), nil
}
