package finnhubApi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/KotFed0t/stock_watchlist/config"
	"github.com/KotFed0t/stock_watchlist/internal/externalApi"
	"github.com/KotFed0t/stock_watchlist/internal/metrics"
	"github.com/KotFed0t/stock_watchlist/internal/model/finnhubModel"
	"github.com/KotFed0t/stock_watchlist/utils"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

type Metrics interface {
	ObserveQuoteFetch(outcome string, duration time.Duration)
}

type FinnhubApi struct {
	client  *resty.Client
	apiKey  string
	metrics Metrics
	group   singleflight.Group
}

func New(cfg *config.Config, metrics Metrics) *FinnhubApi {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout).
		SetBaseURL(cfg.API.FinnhubApi.Url)
	return &FinnhubApi{client: client, apiKey: cfg.API.FinnhubApi.ApiKey, metrics: metrics}
}

// GetQuote fetches the latest quote for symbol.
// Concurrent calls for the same symbol share a single upstream request. That request is
// detached from the caller's context, so it outlives a cancelled caller until it finishes
// or API_TIMEOUT expires; with API_TIMEOUT=0 a hung upstream keeps at most one request
// per symbol in flight.
func (a *FinnhubApi) GetQuote(ctx context.Context, symbol string) (finnhubModel.Quote, error) {
	ch := a.group.DoChan(symbol, func() (any, error) {
		return a.fetchQuote(context.WithoutCancel(ctx), symbol)
	})

	select {
	case <-ctx.Done():
		return finnhubModel.Quote{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return finnhubModel.Quote{}, res.Err
		}
		return res.Val.(finnhubModel.Quote), nil
	}
}

func (a *FinnhubApi) fetchQuote(ctx context.Context, symbol string) (quote finnhubModel.Quote, err error) {
	rqId := utils.GetRequestIDFromCtx(ctx)
	url := "/quote"
	params := map[string]string{
		"symbol": symbol,
		"token":  a.apiKey,
	}

	slog.Debug("start FinnhubApi.GetQuote request", slog.String("rqID", rqId), slog.String("symbol", symbol))

	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeOK
		if err != nil {
			outcome = metrics.OutcomeError
		}
		if a.metrics != nil {
			a.metrics.ObserveQuoteFetch(outcome, time.Since(start))
		}
	}()

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get(url)

	if err != nil {
		slog.Error("error while dialing FinnhubApi", slog.String("err", err.Error()), slog.String("rqID", rqId))
		return finnhubModel.Quote{}, err
	}

	if resp.IsError() {
		slog.Error(
			"FinnhubApi responded with error status",
			slog.Int("status", resp.StatusCode()),
			slog.String("body", resp.String()),
			slog.String("rqID", rqId),
		)
		return finnhubModel.Quote{}, &externalApi.UpstreamError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	err = json.Unmarshal(resp.Body(), &quote)
	if err != nil {
		slog.Error("can't unmarshall response into finnhubModel.Quote", slog.String("err", err.Error()), slog.String("rqID", rqId))
		return finnhubModel.Quote{}, fmt.Errorf("decode finnhub quote: %w", err)
	}

	slog.Debug("FinnhubApi.GetQuote request complete", slog.String("rqID", rqId))

	return quote, nil
}
