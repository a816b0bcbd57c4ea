package router

import (
	authhandler "easytrack_backend/internal/feature/auth/transport/handler"
	markethandler "easytrack_backend/internal/feature/market/transport/handler"
	watchlisthandler "easytrack_backend/internal/feature/watchlist/transport/handler"
	"easytrack_backend/internal/platform/http/handler"
	jwtmw "easytrack_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(auth *authhandler.AuthHandler, market *markethandler.MarketHandler,
	watchlist *watchlisthandler.WatchlistHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	// マーケットデータ（認証不要）
	stock := api.Group("/stock")
	{
		stock.GET("", market.GetQuote)
		stock.GET("/chart", market.GetChart)
		stock.GET("/details", market.GetDetails)
		stock.GET("/fsummary", market.GetFinancialSummary)
		stock.GET("/search", market.Search)
	}

	users := api.Group("/users")

	// 認証不要のアカウント操作
	users.POST("/auth/signup", auth.Signup)
	users.POST("/auth/login", auth.Login)
	users.GET("/auth/signout", auth.Signout)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → authTokenクッキーに有効なJWTが必要になる
	authed := users.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.GET("/auth/me", auth.Me)
		authed.POST("/addstock", watchlist.AddStock)
		authed.GET("/fetchstocklist", watchlist.FetchStockList)
	}

	return r
}
