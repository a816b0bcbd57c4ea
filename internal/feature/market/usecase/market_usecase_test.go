package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"easytrack_backend/internal/feature/market/domain/entity"
)

// mockMarketRepository はテスト用のMarketRepositoryモック実装です。
type mockMarketRepository struct {
	getQuoteFn func(ctx context.Context, symbol string) (float64, error)
	getChartFn func(ctx context.Context, symbol string, window entity.TimeWindow) ([]entity.PricePoint, error)
	searchFn   func(ctx context.Context, query string) ([]entity.SearchResult, error)
}

func (m *mockMarketRepository) GetQuote(ctx context.Context, symbol string) (float64, error) {
	if m.getQuoteFn != nil {
		return m.getQuoteFn(ctx, symbol)
	}
	return 0, errors.New("not implemented")
}

func (m *mockMarketRepository) GetChart(ctx context.Context, symbol string, window entity.TimeWindow) ([]entity.PricePoint, error) {
	if m.getChartFn != nil {
		return m.getChartFn(ctx, symbol, window)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMarketRepository) GetDetails(ctx context.Context, symbol string) (*entity.StockDetails, error) {
	return nil, errors.New("not implemented")
}

func (m *mockMarketRepository) GetFinancialSummary(ctx context.Context, symbol string) (*entity.FinancialSummary, error) {
	return nil, errors.New("not implemented")
}

func (m *mockMarketRepository) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query)
	}
	return nil, errors.New("not implemented")
}

// TestMarketUsecase_GetChart_WindowPassedToRepository は1Mチャート要求で
// 基準日2024-03-15に対して period1=2024-02-15, period2=2024-03-15 が
// リポジトリに渡ることを検証します。
func TestMarketUsecase_GetChart_WindowPassedToRepository(t *testing.T) {
	t.Parallel()

	var gotWindow entity.TimeWindow
	mockRepo := &mockMarketRepository{
		getChartFn: func(ctx context.Context, symbol string, window entity.TimeWindow) ([]entity.PricePoint, error) {
			gotWindow = window
			return []entity.PricePoint{}, nil
		},
	}

	uc := NewMarketUsecase(mockRepo)
	uc.now = func() time.Time { return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) }

	if _, err := uc.GetChart(context.Background(), "AAPL", "1M", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotWindow.Start.Format(DateLayout); got != "2024-02-15" {
		t.Errorf("expected period1 2024-02-15, got %s", got)
	}
	if got := gotWindow.End.Format(DateLayout); got != "2024-03-15" {
		t.Errorf("expected period2 2024-03-15, got %s", got)
	}
}

// TestMarketUsecase_GetChart_MalformedBounds は不正な明示境界でリポジトリが
// 呼ばれずにエラーが返ることを検証します。
func TestMarketUsecase_GetChart_MalformedBounds(t *testing.T) {
	t.Parallel()

	called := false
	mockRepo := &mockMarketRepository{
		getChartFn: func(ctx context.Context, symbol string, window entity.TimeWindow) ([]entity.PricePoint, error) {
			called = true
			return nil, nil
		},
	}

	uc := NewMarketUsecase(mockRepo)
	if _, err := uc.GetChart(context.Background(), "AAPL", "", "yesterday", ""); err == nil {
		t.Fatal("expected error but got nil")
	}
	if called {
		t.Error("repository should not be called for malformed bounds")
	}
}

// TestMarketUsecase_Search_EmptyQuery は空のクエリでプロバイダーを呼ばずに
// 空の結果が返ることを検証します。
func TestMarketUsecase_Search_EmptyQuery(t *testing.T) {
	t.Parallel()

	called := false
	mockRepo := &mockMarketRepository{
		searchFn: func(ctx context.Context, query string) ([]entity.SearchResult, error) {
			called = true
			return nil, nil
		},
	}

	uc := NewMarketUsecase(mockRepo)
	for _, q := range []string{"", "   ", "\t"} {
		results, err := uc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("query %q: expected empty results, got %d", q, len(results))
		}
	}
	if called {
		t.Error("repository should not be called for empty queries")
	}
}

// TestMarketUsecase_Search_TruncatesToMax は結果がMaxSearchResults件に
// 切り詰められることを検証します。
func TestMarketUsecase_Search_TruncatesToMax(t *testing.T) {
	t.Parallel()

	many := make([]entity.SearchResult, 9)
	for i := range many {
		many[i] = entity.SearchResult{Symbol: "SYM", Name: "Name"}
	}
	mockRepo := &mockMarketRepository{
		searchFn: func(ctx context.Context, query string) ([]entity.SearchResult, error) {
			return many, nil
		},
	}

	uc := NewMarketUsecase(mockRepo)
	results, err := uc.Search(context.Background(), "sym")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != MaxSearchResults {
		t.Errorf("expected %d results, got %d", MaxSearchResults, len(results))
	}
}

// TestMarketUsecase_GetQuote_PassesThrough はGetQuoteがリポジトリの結果と
// エラーをそのまま返すことを検証します。
func TestMarketUsecase_GetQuote_PassesThrough(t *testing.T) {
	t.Parallel()

	mockRepo := &mockMarketRepository{
		getQuoteFn: func(ctx context.Context, symbol string) (float64, error) {
			return 187.42, nil
		},
	}
	uc := NewMarketUsecase(mockRepo)

	price, err := uc.GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 187.42 {
		t.Errorf("expected price 187.42, got %v", price)
	}

	upstreamErr := errors.New("data unavailable")
	mockRepo.getQuoteFn = func(ctx context.Context, symbol string) (float64, error) {
		return 0, upstreamErr
	}
	if _, err := uc.GetQuote(context.Background(), "AAPL"); !errors.Is(err, upstreamErr) {
		t.Errorf("expected upstream error, got %v", err)
	}
}
