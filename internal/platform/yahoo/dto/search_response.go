package dto

// SearchResponse represents the JSON response from the v1 search endpoint.
type SearchResponse struct {
	Quotes []SearchQuote `json:"quotes"`
}

// SearchQuote is one raw search candidate. Non-equity candidates and
// entries not listed on Yahoo Finance are filtered out downstream.
type SearchQuote struct {
	Symbol         string `json:"symbol"`
	ShortName      string `json:"shortname"`
	LongName       string `json:"longname"`
	QuoteType      string `json:"quoteType"`
	IsYahooFinance bool   `json:"isYahooFinance"`
}
