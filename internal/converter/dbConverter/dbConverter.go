package dbConverter

import (
	"github.com/KotFed0t/stock_watchlist/internal/model"
	"github.com/KotFed0t/stock_watchlist/internal/model/dbModel"
)

func ConvertWatchlist(dbWatchlist dbModel.Watchlist) model.Watchlist {
	return model.Watchlist{
		ID:   dbWatchlist.ID,
		Name: dbWatchlist.Name,
	}
}

func ConvertWatchlistItem(dbItem dbModel.WatchlistItem) model.WatchlistItem {
	return model.WatchlistItem{
		ID:           dbItem.ID,
		WatchlistID:  dbItem.WatchlistID,
		Symbol:       dbItem.Symbol,
		InitialPrice: dbItem.InitialPrice,
		AddedAt:      dbItem.AddedAt,
	}
}
