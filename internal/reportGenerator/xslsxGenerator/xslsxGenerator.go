package xslsxGenerator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KotFed0t/stock_watchlist/internal/model"
	"github.com/KotFed0t/stock_watchlist/utils"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName     = "Performance"
	firstItemRow  = 3
	addedAtFormat = "2006-01-02 15:04:05"
)

type XSLSXGenerator struct{}

func New() *XSLSXGenerator {
	return &XSLSXGenerator{}
}

// Generate renders a watchlist performance report: one row per item followed by the summary.
func (g *XSLSXGenerator) Generate(ctx context.Context, performance model.Performance) (fileBytes []byte, fileExtension string, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "XSLSXGenerator.Generate"

	slog.Debug("Generate start", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("watchlistID", performance.WatchlistID))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("got error while closing file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}()

	if err = f.SetSheetName("Sheet1", sheetName); err != nil {
		slog.Error("got error while renaming Sheet1", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}

	if err = g.fillSheet(f, performance); err != nil {
		slog.Error("got error while filling sheet", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		slog.Error("got error while Saving file to bytes buffer", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}

	slog.Debug("Generate completed", slog.String("rqID", rqID), slog.String("op", op))

	return buf.Bytes(), ".xlsx", nil
}

func (g *XSLSXGenerator) headerStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{color},
		},
	})
}

func (g *XSLSXGenerator) fillSheet(f *excelize.File, performance model.Performance) error {
	err := f.MergeCell(sheetName, "A1", "G1")
	if err != nil {
		return err
	}

	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("Watchlist %d", performance.WatchlistID))

	styleID, err := g.headerStyle(f, "#cfe2f3") // light blue
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheetName, "A1", "A1", styleID); err != nil {
		return fmt.Errorf("apply title style: %w", err)
	}

	_ = f.SetCellStr(sheetName, "A2", "id")
	_ = f.SetCellStr(sheetName, "B2", "symbol")
	_ = f.SetCellStr(sheetName, "C2", "added at")
	_ = f.SetCellStr(sheetName, "D2", "initial price")
	_ = f.SetCellStr(sheetName, "E2", "current price")
	_ = f.SetCellStr(sheetName, "F2", "abs change")
	_ = f.SetCellStr(sheetName, "G2", "% change")

	for i, item := range performance.Items {
		row := i + firstItemRow
		_ = f.SetCellInt(sheetName, fmt.Sprintf("A%d", row), item.ID)
		_ = f.SetCellStr(sheetName, fmt.Sprintf("B%d", row), item.Symbol)
		_ = f.SetCellStr(sheetName, fmt.Sprintf("C%d", row), item.AddedAt.UTC().Format(addedAtFormat))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.InitialPrice.InexactFloat64())
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.CurrentPrice.InexactFloat64())
		_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), item.AbsChange.InexactFloat64())
		if item.PctChange != nil {
			_ = f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), item.PctChange.InexactFloat64())
		}
	}

	// итоги
	rowNum := len(performance.Items) + firstItemRow + 1

	err = f.MergeCell(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("B%d", rowNum))
	if err != nil {
		return err
	}

	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), "Summary")

	styleID, err = g.headerStyle(f, "#cccccc") // grey
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("A%d", rowNum), styleID); err != nil {
		return fmt.Errorf("apply summary style: %w", err)
	}

	rowNum++
	_ = f.SetCellStr(sheetName, fmt.Sprintf("A%d", rowNum), "count")
	_ = f.SetCellInt(sheetName, fmt.Sprintf("B%d", rowNum), int64(performance.Summary.Count))

	rowNum++
	_ = f.SetCellStr(sheetName, fmt.Sprintf("A%d", rowNum), "avg % change")
	if performance.Summary.AvgPctChange != nil {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), performance.Summary.AvgPctChange.InexactFloat64())
	}

	return nil
}
