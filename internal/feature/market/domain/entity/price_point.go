// Package entity defines the domain models for the market feature.
package entity

import "time"

// TimeWindow is a concrete [Start, End] calendar-date interval used for
// historical chart queries. Both bounds are calendar dates with no
// time-of-day component.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// PricePoint represents one trading session of OHLCV data for a symbol.
// Numeric fields are pointers because the upstream provider may omit any
// of them for a given session; an absent field stays nil and is dropped
// from the JSON response rather than rendered as zero.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Open   *float64  `json:"open,omitempty"`
	High   *float64  `json:"high,omitempty"`
	Low    *float64  `json:"low,omitempty"`
	Close  *float64  `json:"close,omitempty"`
	Volume *int64    `json:"volume,omitempty"`
}
