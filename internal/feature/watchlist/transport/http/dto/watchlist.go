// Package dto defines data transfer objects for the watchlist feature's HTTP transport layer.
package dto

// AddStockReq represents the request body for the addstock endpoint.
type AddStockReq struct {
	Symbol string `json:"symbol" binding:"required"`
}

// StockListResponse is the user's watchlist as returned by fetchstocklist.
type StockListResponse struct {
	Stocks []string `json:"stocks"`
}
