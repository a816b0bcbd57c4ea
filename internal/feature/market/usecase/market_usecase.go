// Package usecase はmarketフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"
	"time"

	"easytrack_backend/internal/feature/market/domain/entity"
)

const (
	// MaxSearchResults は検索サジェストの最大返却件数です。
	MaxSearchResults = 5
)

// MarketRepository は外部マーケットデータプロバイダーを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/yahoo）ではなく
// コンシューマー（usecase）が定義します。
// どのメソッドの失敗も呼び出し側には単一の不透明なエラーとして扱われます。
type MarketRepository interface {
	// GetQuote は銘柄の直近の取引価格を取得します。
	GetQuote(ctx context.Context, symbol string) (float64, error)
	// GetChart は期間内の日足OHLCVバーを正規化済みの形で取得します。
	GetChart(ctx context.Context, symbol string, window entity.TimeWindow) ([]entity.PricePoint, error)
	// GetDetails は銘柄カード向けのサマリーフィールドを取得します。
	GetDetails(ctx context.Context, symbol string) (*entity.StockDetails, error)
	// GetFinancialSummary はファンダメンタルズのサマリーを取得します。
	GetFinancialSummary(ctx context.Context, symbol string) (*entity.FinancialSummary, error)
	// Search はティッカー/企業名のあいまい検索を行います。株式（EQUITY）
	// 以外の候補はプロバイダー層で除外済みです。
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

// marketUsecase はマーケットデータ操作のユースケースを実装します。
type marketUsecase struct {
	market MarketRepository
	now    func() time.Time
}

// NewMarketUsecase はmarketUsecaseの新しいインスタンスを生成します。
func NewMarketUsecase(market MarketRepository) *marketUsecase {
	return &marketUsecase{market: market, now: time.Now}
}

// GetQuote は銘柄の最新価格を取得します。
func (u *marketUsecase) GetQuote(ctx context.Context, symbol string) (float64, error) {
	return u.market.GetQuote(ctx, symbol)
}

// GetChart は期間トークンまたは明示的な日付境界を解決し、
// その期間のチャートデータを取得します。
func (u *marketUsecase) GetChart(ctx context.Context, symbol, period, period1, period2 string) ([]entity.PricePoint, error) {
	window, err := ResolveWindow(period, period1, period2, u.now())
	if err != nil {
		return nil, err
	}
	return u.market.GetChart(ctx, symbol, window)
}

// GetDetails は銘柄カード向けのサマリーフィールドを取得します。
func (u *marketUsecase) GetDetails(ctx context.Context, symbol string) (*entity.StockDetails, error) {
	return u.market.GetDetails(ctx, symbol)
}

// GetFinancialSummary はファンダメンタルズのサマリーを取得します。
func (u *marketUsecase) GetFinancialSummary(ctx context.Context, symbol string) (*entity.FinancialSummary, error) {
	return u.market.GetFinancialSummary(ctx, symbol)
}

// Search はティッカー検索のサジェスト候補を返します。
// 空のクエリはプロバイダーを呼ばずに空の結果を返し、
// 結果はMaxSearchResults件に切り詰めます。
func (u *marketUsecase) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []entity.SearchResult{}, nil
	}
	results, err := u.market.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	return results, nil
}
