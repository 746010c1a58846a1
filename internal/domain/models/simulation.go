package models

import "time"

// PricePoint is one day of a synthetic price series. SMA20 is present only
// from day 20 and EMA10 only from day 10; both are trailing means over the
// prior stored prices, rounded to 2 decimals. Immutable once produced.
type PricePoint struct {
	Day   int      `json:"day"`
	Price float64  `json:"price"`
	SMA20 *float64 `json:"sma20,omitempty"`
	EMA10 *float64 `json:"ema10,omitempty"`
}

// SimulationResult is the outcome of one mock trading simulation.
// Created once per request and immutable afterward; the service only keeps
// it in the response cache, persistence is the caller's concern.
type SimulationResult struct {
	ID             string       `json:"id"`
	Asset          string       `json:"asset"`
	Strategy       string       `json:"strategy"`
	TimeframeDays  int          `json:"timeframe_days"`
	InitialCapital float64      `json:"initial_capital"`
	FinalCapital   float64      `json:"final_capital"`
	ROIPercent     float64      `json:"roi_percent"`
	Series         []PricePoint `json:"series"`
	CreatedAt      time.Time    `json:"created_at"`
}

// PerformanceSummary is the slice of a simulation the feedback generator
// cares about.
type PerformanceSummary struct {
	ROI          float64 `json:"roi"`
	FinalCapital float64 `json:"final_capital"`
}
