package entity

// SearchResult is one ticker suggestion returned by symbol search.
type SearchResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
