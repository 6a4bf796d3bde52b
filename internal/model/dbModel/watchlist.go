package dbModel

import (
	"time"

	"github.com/shopspring/decimal"
)

type Watchlist struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type WatchlistItem struct {
	ID           int64           `db:"id"`
	WatchlistID  int64           `db:"watchlist_id"`
	Symbol       string          `db:"symbol"`
	InitialPrice decimal.Decimal `db:"initial_price"`
	AddedAt      time.Time       `db:"added_at"`
}
