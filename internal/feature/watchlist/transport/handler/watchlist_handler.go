// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"easytrack_backend/internal/feature/watchlist/transport/http/dto"
	"easytrack_backend/internal/feature/watchlist/usecase"
	jwtmw "easytrack_backend/internal/platform/jwt"
)

// WatchlistUsecase はウォッチリスト操作のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type WatchlistUsecase interface {
	AddSymbol(ctx context.Context, userID, symbol string) error
	ListSymbols(ctx context.Context, userID string) ([]string, error)
}

// WatchlistHandler はウォッチリスト操作のHTTPリクエストを処理します。
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler は指定されたusecaseでWatchlistHandlerの新しい
// インスタンスを生成します。
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// AddStock はユーザーのウォッチリストに銘柄を追加します。
// 冪等な操作で、既に存在する銘柄の再追加も200で成功します。
// ユーザーレコードが存在しない場合は404を返します。
func (h *WatchlistHandler) AddStock(c *gin.Context) {
	var req dto.AddStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock symbol is required"})
		return
	}

	userID := c.GetString(jwtmw.ContextUserID)
	if err := h.uc.AddSymbol(c.Request.Context(), userID, req.Symbol); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("failed to add stock", "error", err, "user_id", userID, "symbol", req.Symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock added successfully"})
}

// FetchStockList はユーザーのウォッチリストの銘柄一覧を返します。
func (h *WatchlistHandler) FetchStockList(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)

	stocks, err := h.uc.ListSymbols(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("failed to fetch stock list", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.StockListResponse{Stocks: stocks})
}
