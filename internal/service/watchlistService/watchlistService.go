package watchlistService

//go:generate mockgen -package=watchlistService_test -destination=mock_deps_test.go -source=watchlistService.go

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KotFed0t/stock_watchlist/config"
	"github.com/KotFed0t/stock_watchlist/data/cache"
	"github.com/KotFed0t/stock_watchlist/data/repository"
	"github.com/KotFed0t/stock_watchlist/internal/metrics"
	"github.com/KotFed0t/stock_watchlist/internal/model"
	"github.com/KotFed0t/stock_watchlist/internal/model/finnhubModel"
	"github.com/KotFed0t/stock_watchlist/internal/service"
	"github.com/KotFed0t/stock_watchlist/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultRefreshFanout = 5

type QuotesApi interface {
	GetQuote(ctx context.Context, symbol string) (finnhubModel.Quote, error)
}

type Cache interface {
	GetQuote(ctx context.Context, symbol string) (finnhubModel.Quote, error)
	SetQuote(ctx context.Context, symbol string, quote finnhubModel.Quote) error
	SetQuotes(ctx context.Context, quotes map[string]finnhubModel.Quote) error
}

type Repository interface {
	WithinTransaction(ctx context.Context, tFunc func(ctx context.Context) error) error
	CreateWatchlist(ctx context.Context, name string) (model.Watchlist, error)
	WatchlistExists(ctx context.Context, watchlistID int64) (bool, error)
	LockWatchlist(ctx context.Context, watchlistID int64) error
	InsertWatchlistItem(ctx context.Context, watchlistID int64, symbol string, initialPrice decimal.Decimal) (model.WatchlistItem, error)
	GetWatchlistItems(ctx context.Context, watchlistID int64) ([]model.WatchlistItem, error)
	DeleteWatchlistItem(ctx context.Context, watchlistID, itemID int64) (model.WatchlistItem, error)
	GetTrackedSymbols(ctx context.Context) ([]string, error)
}

type ReportGenerator interface {
	Generate(ctx context.Context, performance model.Performance) (fileBytes []byte, fileExtension string, err error)
}

type Metrics interface {
	ObserveQuoteFetch(outcome string, duration time.Duration)
}

type WatchlistService struct {
	repo            Repository
	cache           Cache
	quotesApi       QuotesApi
	reportGenerator ReportGenerator
	metrics         Metrics
	fanoutLimit     int
}

// New builds the service. quoteCache may be nil, then every quote is fetched from the provider.
func New(cfg *config.Config, repo Repository, quoteCache Cache, quotesApi QuotesApi, reportGenerator ReportGenerator, metrics Metrics) *WatchlistService {
	return &WatchlistService{
		repo:            repo,
		cache:           quoteCache,
		quotesApi:       quotesApi,
		reportGenerator: reportGenerator,
		metrics:         metrics,
		fanoutLimit:     cfg.API.QuoteFanoutLimit,
	}
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (s *WatchlistService) getQuote(ctx context.Context, symbol string, useCache bool) (finnhubModel.Quote, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "WatchlistService.getQuote"

	if useCache && s.cache != nil {
		quote, err := s.cache.GetQuote(ctx, symbol)
		if err == nil {
			if s.metrics != nil {
				s.metrics.ObserveQuoteFetch(metrics.OutcomeCacheHit, 0)
			}
			return quote, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			slog.Warn("can't get quote from cache", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}

	quote, err := s.quotesApi.GetQuote(ctx, symbol)
	if err != nil {
		slog.Error("can't get quote from quotesApi", slog.String("rqID", rqID), slog.String("op", op), slog.String("symbol", symbol), slog.String("err", err.Error()))
		return finnhubModel.Quote{}, err
	}

	if s.cache != nil {
		if err := s.cache.SetQuote(ctx, symbol, quote); err != nil {
			slog.Warn("can't save quote to cache", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}

	return quote, nil
}

// GetQuote returns the quote for symbol and fails with *service.InvalidQuoteError when
// the provider did not send a current price.
func (s *WatchlistService) GetQuote(ctx context.Context, symbol string) (finnhubModel.Quote, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "WatchlistService.GetQuote"
	symbol = normalizeSymbol(symbol)

	slog.Debug("GetQuote start", slog.String("rqID", rqID), slog.String("op", op), slog.String("symbol", symbol))
	defer func() {
		slog.Debug("GetQuote finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("symbol", symbol))
	}()

	if symbol == "" {
		return finnhubModel.Quote{}, fmt.Errorf("%w: symbol is required", service.ErrValidation)
	}

	quote, err := s.getQuote(ctx, symbol, true)
	if err != nil {
		return finnhubModel.Quote{}, err
	}

	if !quote.HasCurrent() {
		slog.Warn("quote without current price", slog.String("rqID", rqID), slog.String("op", op), slog.Any("quote", quote))
		return finnhubModel.Quote{}, &service.InvalidQuoteError{Quote: quote}
	}

	return quote, nil
}

func (s *WatchlistService) CreateWatchlist(ctx context.Context, name string) (model.Watchlist, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "WatchlistService.CreateWatchlist"

	slog.Debug("CreateWatchlist start", slog.String("rqID", rqID), slog.String("op", op), slog.String("name", name))
	defer func() {
		slog.Debug("CreateWatchlist finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("name", name))
	}()

	if name == "" {
		return model.Watchlist{}, fmt.Errorf("%w: name is required", service.ErrValidation)
	}

	watchlist, err := s.repo.CreateWatchlist(ctx, name)
	if err != nil {
		slog.Error("got error from repo.CreateWatchlist", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Watchlist{}, err
	}

	return watchlist, nil
}

// AddItem stores symbol in the watchlist with its current price as the initial price.
func (s *WatchlistService) AddItem(ctx context.Context, watchlistID int64, symbol string) (item model.WatchlistItem, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "WatchlistService.AddItem"
	symbol = normalizeSymbol(symbol)

	slog.Debug("AddItem start", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("watchlistID", watchlistID), slog.String("symbol", symbol))
	defer func() {
		slog.Debug("AddItem finished", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("watchlistID", watchlistID), slog.String("symbol", symbol))
	}()

	if symbol == "" {
		return model.WatchlistItem{}, fmt.Errorf("%w: symbol is required", service.ErrValidation)
	}

	exists, err := s.repo.WatchlistExists(ctx, watchlistID)
	if err != nil {
		slog.Error("got error from repo.WatchlistExists", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.WatchlistItem{}, err
	}
	if !exists {
		return model.WatchlistItem{}, service.ErrNotFound
	}

	// initial price must be the price at insertion time, so the cache is bypassed
	quote, err := s.getQuote(ctx, symbol, false)
	if err != nil {
		return model.WatchlistItem{}, err
	}

	price := quote.CurrentPrice()
	if !quote.HasCurrent() || !price.IsPositive() {
		slog.Warn("invalid price for new item", slog.String("rqID", rqID), slog.String("op", op), slog.Any("quote", quote))
		return model.WatchlistItem{}, &service.InvalidPriceError{Quote: quote}
	}

	err = s.repo.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.LockWatchlist(ctx, watchlistID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				slog.Warn("watchlist disappeared before insert", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("watchlistID", watchlistID))
				return service.ErrNotFound
			}
			return err
		}

		var err error
		item, err = s.repo.InsertWatchlistItem(ctx, watchlistID, symbol, price)
		return err
	})
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			slog.Error("can't insert watchlist item", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
		return model.WatchlistItem{}, err
	}

	return item, nil
}

func (s *WatchlistService) ListItems(ctx context.Context, watchlistID int64) ([]model.WatchlistItem, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "WatchlistService.ListItems"

	slog.Debug("ListItems start", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("watchlistID", watchlistID))
	defer func() {
		slog.Debug("ListItems finished", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("watchlistID", watchlistID))
	}()

	items, err := s.repo.GetWatchlistItems(ctx, watchlistID)
	if err != nil {
		slog.Error("got error from repo.GetWatchlistItems", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	if items == nil {
		items = []model.WatchlistItem{}
	}

	return items, nil
}

// GetPerformance fetches quotes for all items concurrently. Any failed lookup fails the whole call.
func (s *WatchlistService) GetPerformance(ctx context.Context, watchlistID int64) (model.Performance, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "WatchlistService.GetPerformance"

	slog.Debug("GetPerformance start", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("watchlistID", watchlistID))
	defer func() {
		slog.Debug("GetPerformance finished", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("watchlistID", watchlistID))
	}()

	items, err := s.repo.GetWatchlistItems(ctx, watchlistID)
	if err != nil {
		slog.Error("got error from repo.GetWatchlistItems", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Performance{}, err
	}

	perf := model.Performance{
		WatchlistID: watchlistID,
		Items:       make([]model.ItemPerformance, len(items)),
	}

	if len(items) == 0 {
		return perf, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.fanoutLimit > 0 {
		g.SetLimit(s.fanoutLimit)
	}

	for i, item := range items {
		g.Go(func() error {
			quote, err := s.getQuote(gctx, item.Symbol, true)
			if err != nil {
				return fmt.Errorf("get quote for %s: %w", item.Symbol, err)
			}
			perf.Items[i] = calcItemPerformance(item, quote)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		slog.Error("can't calculate performance", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Performance{}, err
	}

	perf.Summary = summarize(perf.Items)

	return perf, nil
}

func (s *WatchlistService) ExportPerformance(ctx context.Context, watchlistID int64) (fileBytes []byte, fileExtension string, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "WatchlistService.ExportPerformance"

	perf, err := s.GetPerformance(ctx, watchlistID)
	if err != nil {
		return nil, "", err
	}

	fileBytes, fileExtension, err = s.reportGenerator.Generate(ctx, perf)
	if err != nil {
		slog.Error("got error from reportGenerator.Generate", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}

	return fileBytes, fileExtension, nil
}

func (s *WatchlistService) DeleteItem(ctx context.Context, watchlistID, itemID int64) (model.WatchlistItem, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "WatchlistService.DeleteItem"

	slog.Debug("DeleteItem start", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("watchlistID", watchlistID), slog.Int64("itemID", itemID))
	defer func() {
		slog.Debug("DeleteItem finished", slog.String("rqID", rqID), slog.String("op", op), slog.Int64("watchlistID", watchlistID), slog.Int64("itemID", itemID))
	}()

	item, err := s.repo.DeleteWatchlistItem(ctx, watchlistID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.WatchlistItem{}, service.ErrNotFound
		}
		slog.Error("got error from repo.DeleteWatchlistItem", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.WatchlistItem{}, err
	}

	return item, nil
}

// RefreshQuoteCache reloads quotes of every tracked symbol into the cache.
// Symbols that fail are skipped and reported in the returned error.
func (s *WatchlistService) RefreshQuoteCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "WatchlistService.RefreshQuoteCache"

	symbols, err := s.repo.GetTrackedSymbols(ctx)
	if err != nil {
		slog.Error("got error from repo.GetTrackedSymbols", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	if len(symbols) == 0 {
		return nil
	}

	var (
		mu     sync.Mutex
		quotes = make(map[string]finnhubModel.Quote, len(symbols))
		errs   []error
	)

	limit := s.fanoutLimit
	if limit <= 0 {
		limit = defaultRefreshFanout
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for _, symbol := range symbols {
		g.Go(func() error {
			quote, err := s.quotesApi.GetQuote(ctx, symbol)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("get quote for %s: %w", symbol, err))
				return nil
			}
			quotes[symbol] = quote
			return nil
		})
	}
	_ = g.Wait()

	if len(quotes) > 0 {
		if err := s.cache.SetQuotes(ctx, quotes); err != nil {
			return err
		}
	}

	slog.Info("quote cache refreshed", slog.String("rqID", rqID), slog.String("op", op), slog.Int("refreshed", len(quotes)), slog.Int("failed", len(errs)))

	return errors.Join(errs...)
}
