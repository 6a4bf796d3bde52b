package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Watchlist struct {
	ID   int64
	Name string
}

type WatchlistItem struct {
	ID           int64
	WatchlistID  int64
	Symbol       string
	InitialPrice decimal.Decimal
	AddedAt      time.Time
}
