// Package usecase はwatchlistフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
)

// WatchlistRepository はウォッチリストの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなく
// コンシューマー（usecase）が定義します。
type WatchlistRepository interface {
	// AddSymbol はユーザーのウォッチリスト集合に銘柄を追加します。
	// 集合への挿入はストレージ層でアトミックに行われ、既に存在する銘柄の
	// 追加は変更なし（added=false）として成功します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	AddSymbol(ctx context.Context, userID, symbol string) (added bool, err error)

	// ListSymbols はユーザーのウォッチリストの銘柄一覧を取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	ListSymbols(ctx context.Context, userID string) ([]string, error)
}

// watchlistUsecase はウォッチリスト操作のユースケースを実装します。
type watchlistUsecase struct {
	watchlist WatchlistRepository
}

// NewWatchlistUsecase はwatchlistUsecaseの新しいインスタンスを生成します。
func NewWatchlistUsecase(watchlist WatchlistRepository) *watchlistUsecase {
	return &watchlistUsecase{watchlist: watchlist}
}

// AddSymbol はユーザーのウォッチリストに銘柄を追加します。冪等であり、
// 既に存在する銘柄の再追加は成功扱いで集合を変更しません。
func (u *watchlistUsecase) AddSymbol(ctx context.Context, userID, symbol string) error {
	// addedフラグはここでは区別不要。「既に存在」は成功、
	// 「ユーザー不在」はエラーとしてそのまま伝播する。
	_, err := u.watchlist.AddSymbol(ctx, userID, symbol)
	return err
}

// ListSymbols はユーザーのウォッチリストの銘柄一覧を返します。
func (u *watchlistUsecase) ListSymbols(ctx context.Context, userID string) ([]string, error) {
	return u.watchlist.ListSymbols(ctx, userID)
}
