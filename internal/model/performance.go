package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemPerformance struct {
	ID           int64
	Symbol       string
	AddedAt      time.Time
	InitialPrice decimal.Decimal
	CurrentPrice decimal.Decimal
	AbsChange    decimal.Decimal
	// nil when the initial price is zero
	PctChange *decimal.Decimal
}

type PerformanceSummary struct {
	Count        int
	AvgPctChange *decimal.Decimal
}

type Performance struct {
	WatchlistID int64
	Items       []ItemPerformance
	Summary     PerformanceSummary
}
