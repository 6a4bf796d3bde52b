package httpModel

import (
	"time"

	"github.com/KotFed0t/stock_watchlist/internal/model/finnhubModel"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Raw     any    `json:"raw,omitempty"`
	Quote   any    `json:"quote,omitempty"`
}

type CreateWatchlistRequest struct {
	Name string `json:"name"`
}

type AddItemRequest struct {
	Symbol string `json:"symbol"`
}

type Watchlist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type WatchlistItem struct {
	ID           int64     `json:"id"`
	WatchlistID  int64     `json:"watchlist_id"`
	Symbol       string    `json:"symbol"`
	InitialPrice float64   `json:"initial_price"`
	AddedAt      time.Time `json:"added_at"`
}

type DeleteItemResponse struct {
	Message string        `json:"message"`
	Item    WatchlistItem `json:"item"`
}

type Quote struct {
	Symbol        string             `json:"symbol"`
	CurrentPrice  float64            `json:"current_price"`
	High          float64            `json:"high"`
	Low           float64            `json:"low"`
	Open          float64            `json:"open"`
	PreviousClose float64            `json:"previous_close"`
	Raw           finnhubModel.Quote `json:"raw"`
}

type ItemPerformance struct {
	ID           int64     `json:"id"`
	Symbol       string    `json:"symbol"`
	AddedAt      time.Time `json:"added_at"`
	InitialPrice float64   `json:"initial_price"`
	CurrentPrice float64   `json:"current_price"`
	AbsChange    float64   `json:"abs_change"`
	PctChange    *float64  `json:"pct_change"`
}

type PerformanceSummary struct {
	Count        int      `json:"count"`
	AvgPctChange *float64 `json:"avg_pct_change"`
}

type Performance struct {
	WatchlistID int64              `json:"watchlist_id"`
	Items       []ItemPerformance  `json:"items"`
	Summary     PerformanceSummary `json:"summary"`
}
