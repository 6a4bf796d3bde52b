package httpConverter

import (
	"github.com/KotFed0t/stock_watchlist/internal/model"
	"github.com/KotFed0t/stock_watchlist/internal/model/finnhubModel"
	"github.com/KotFed0t/stock_watchlist/internal/model/httpModel"
	"github.com/shopspring/decimal"
)

func floatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func ConvertWatchlist(watchlist model.Watchlist) httpModel.Watchlist {
	return httpModel.Watchlist{
		ID:   watchlist.ID,
		Name: watchlist.Name,
	}
}

func ConvertWatchlistItem(item model.WatchlistItem) httpModel.WatchlistItem {
	return httpModel.WatchlistItem{
		ID:           item.ID,
		WatchlistID:  item.WatchlistID,
		Symbol:       item.Symbol,
		InitialPrice: item.InitialPrice.InexactFloat64(),
		AddedAt:      item.AddedAt,
	}
}

func ConvertWatchlistItems(items []model.WatchlistItem) []httpModel.WatchlistItem {
	res := make([]httpModel.WatchlistItem, 0, len(items))
	for _, item := range items {
		res = append(res, ConvertWatchlistItem(item))
	}
	return res
}

func ConvertQuote(symbol string, quote finnhubModel.Quote) httpModel.Quote {
	return httpModel.Quote{
		Symbol:        symbol,
		CurrentPrice:  quote.CurrentPrice().InexactFloat64(),
		High:          quote.High,
		Low:           quote.Low,
		Open:          quote.Open,
		PreviousClose: quote.PreviousClose,
		Raw:           quote,
	}
}

func ConvertPerformance(perf model.Performance) httpModel.Performance {
	items := make([]httpModel.ItemPerformance, 0, len(perf.Items))
	for _, item := range perf.Items {
		items = append(items, httpModel.ItemPerformance{
			ID:           item.ID,
			Symbol:       item.Symbol,
			AddedAt:      item.AddedAt,
			InitialPrice: item.InitialPrice.InexactFloat64(),
			CurrentPrice: item.CurrentPrice.InexactFloat64(),
			AbsChange:    item.AbsChange.InexactFloat64(),
			PctChange:    floatPtr(item.PctChange),
		})
	}

	return httpModel.Performance{
		WatchlistID: perf.WatchlistID,
		Items:       items,
		Summary: httpModel.PerformanceSummary{
			Count:        perf.Summary.Count,
			AvgPctChange: floatPtr(perf.Summary.AvgPctChange),
		},
	}
}
