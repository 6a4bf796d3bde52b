package service

import (
	"errors"

	"github.com/KotFed0t/stock_watchlist/internal/model/finnhubModel"
)

var (
	ErrNotFound   = errors.New("error not found")
	ErrValidation = errors.New("error validation")
)

// InvalidQuoteError means the provider answered but without a current price.
type InvalidQuoteError struct {
	Quote finnhubModel.Quote
}

func (e *InvalidQuoteError) Error() string {
	return "error invalid quote: current price is missing"
}

// InvalidPriceError means the current price can't be used as an initial price.
type InvalidPriceError struct {
	Quote finnhubModel.Quote
}

func (e *InvalidPriceError) Error() string {
	return "error invalid price: current price must be positive"
}
