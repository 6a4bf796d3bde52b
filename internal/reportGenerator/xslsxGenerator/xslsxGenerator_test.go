package xslsxGenerator

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/KotFed0t/stock_watchlist/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerate(t *testing.T) {
	pct := decimal.NewFromInt(10)
	avg := decimal.NewFromInt(10)
	perf := model.Performance{
		WatchlistID: 7,
		Items: []model.ItemPerformance{
			{
				ID:           1,
				Symbol:       "AAPL",
				AddedAt:      time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
				InitialPrice: decimal.NewFromInt(100),
				CurrentPrice: decimal.NewFromInt(110),
				AbsChange:    decimal.NewFromInt(10),
				PctChange:    &pct,
			},
			{
				ID:           2,
				Symbol:       "FREE",
				InitialPrice: decimal.Zero,
				CurrentPrice: decimal.NewFromInt(3),
				AbsChange:    decimal.NewFromInt(3),
			},
		},
		Summary: model.PerformanceSummary{Count: 2, AvgPctChange: &avg},
	}

	data, ext, err := New().Generate(context.Background(), perf)
	require.NoError(t, err)
	require.Equal(t, ".xlsx", ext)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cell := func(axis string) string {
		v, err := f.GetCellValue(sheetName, axis)
		require.NoError(t, err)
		return v
	}

	require.Equal(t, "Watchlist 7", cell("A1"))
	require.Equal(t, "symbol", cell("B2"))
	require.Equal(t, "AAPL", cell("B3"))
	require.Equal(t, "2025-03-01 10:00:00", cell("C3"))
	require.Equal(t, "110", cell("E3"))
	require.Equal(t, "10", cell("G3"))
	require.Equal(t, "FREE", cell("B4"))
	require.Equal(t, "", cell("G4"))
	require.Equal(t, "Summary", cell("A6"))
	require.Equal(t, "2", cell("B7"))
	require.Equal(t, "10", cell("B8"))
}

func TestGenerate_EmptyWatchlist(t *testing.T) {
	data, _, err := New().Generate(context.Background(), model.Performance{WatchlistID: 1})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	count, err := f.GetCellValue(sheetName, "B5")
	require.NoError(t, err)
	require.Equal(t, "0", count)

	avg, err := f.GetCellValue(sheetName, "B6")
	require.NoError(t, err)
	require.Equal(t, "", avg)
}
