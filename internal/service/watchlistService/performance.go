package watchlistService

import (
	"github.com/KotFed0t/stock_watchlist/internal/model"
	"github.com/KotFed0t/stock_watchlist/internal/model/finnhubModel"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// calcItemPerformance compares the initial price with the quote's current price.
// A missing current price is treated as zero.
func calcItemPerformance(item model.WatchlistItem, quote finnhubModel.Quote) model.ItemPerformance {
	current := quote.CurrentPrice()
	absChange := current.Sub(item.InitialPrice)

	perf := model.ItemPerformance{
		ID:           item.ID,
		Symbol:       item.Symbol,
		AddedAt:      item.AddedAt,
		InitialPrice: item.InitialPrice,
		CurrentPrice: current,
		AbsChange:    absChange,
	}

	if !item.InitialPrice.IsZero() {
		pct := absChange.Div(item.InitialPrice).Mul(hundred)
		perf.PctChange = &pct
	}

	return perf
}

// summarize averages percent changes over the items that have one.
func summarize(items []model.ItemPerformance) model.PerformanceSummary {
	summary := model.PerformanceSummary{Count: len(items)}

	sum := decimal.Zero
	n := 0
	for _, item := range items {
		if item.PctChange == nil {
			continue
		}
		sum = sum.Add(*item.PctChange)
		n++
	}

	if n > 0 {
		avg := sum.Div(decimal.NewFromInt(int64(n)))
		summary.AvgPctChange = &avg
	}

	return summary
}
