package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KotFed0t/stock_watchlist/internal/converter/httpConverter"
	"github.com/KotFed0t/stock_watchlist/internal/externalApi"
	"github.com/KotFed0t/stock_watchlist/internal/model"
	"github.com/KotFed0t/stock_watchlist/internal/model/finnhubModel"
	"github.com/KotFed0t/stock_watchlist/internal/model/httpModel"
	"github.com/KotFed0t/stock_watchlist/internal/service"
	"github.com/KotFed0t/stock_watchlist/utils"
	"github.com/go-chi/chi/v5"
)

const (
	livenessText = "Watchlist server is running."
	xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type WatchlistService interface {
	GetQuote(ctx context.Context, symbol string) (finnhubModel.Quote, error)
	CreateWatchlist(ctx context.Context, name string) (model.Watchlist, error)
	AddItem(ctx context.Context, watchlistID int64, symbol string) (model.WatchlistItem, error)
	ListItems(ctx context.Context, watchlistID int64) ([]model.WatchlistItem, error)
	GetPerformance(ctx context.Context, watchlistID int64) (model.Performance, error)
	ExportPerformance(ctx context.Context, watchlistID int64) (fileBytes []byte, fileExtension string, err error)
	DeleteItem(ctx context.Context, watchlistID, itemID int64) (model.WatchlistItem, error)
}

type Controller struct {
	watchlistService WatchlistService
	staticDir        string
	fileServer       http.Handler
}

func NewController(watchlistService WatchlistService, staticDir string) *Controller {
	return &Controller{
		watchlistService: watchlistService,
		staticDir:        staticDir,
		fileServer:       http.FileServer(staticFS{http.Dir(staticDir)}),
	}
}

// staticFS hides directories that have no index.html, so the file server never lists them.
type staticFS struct {
	fs http.FileSystem
}

func (s staticFS) Open(name string) (http.File, error) {
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if stat.IsDir() {
		index, err := s.fs.Open(path.Join(name, "index.html"))
		if err != nil {
			_ = f.Close()
			return nil, os.ErrNotExist
		}
		_ = index.Close()
	}

	return f, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, httpModel.ErrorResponse{Error: msg})
}

func parseID(r *http.Request, param string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, param), 10, 64)
}

// upstreamDetails returns the provider's error body (decoded when it is JSON) or the error text.
func upstreamDetails(err error) any {
	var upErr *externalApi.UpstreamError
	if errors.As(err, &upErr) {
		var body any
		if json.Unmarshal([]byte(upErr.Body), &body) == nil {
			return body
		}
		return upErr.Body
	}
	return err.Error()
}

// Health serves index.html from the static dir when present, otherwise a liveness string.
func (ctrl *Controller) Health(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(ctrl.staticDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		http.ServeFile(w, r, index)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(livenessText))
}

// Static serves files from the static dir for any route that is not part of the API.
func (ctrl *Controller) Static(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}
	ctrl.fileServer.ServeHTTP(w, r)
}

// GET /quote/{symbol}
func (ctrl *Controller) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)
	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))

	quote, err := ctrl.watchlistService.GetQuote(ctx, symbol)
	if err != nil {
		var invalid *service.InvalidQuoteError
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusInternalServerError, httpModel.ErrorResponse{
				Error: "Invalid response from Finnhub",
				Raw:   invalid.Quote,
			})
			return
		}

		slog.Error("got error from watchlistService.GetQuote", slog.String("rqID", rqID), slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, httpModel.ErrorResponse{
			Error:   "Failed to fetch quote from Finnhub",
			Details: upstreamDetails(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, httpConverter.ConvertQuote(symbol, quote))
}

// POST /watchlists
func (ctrl *Controller) CreateWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	var req httpModel.CreateWatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		writeErr(w, http.StatusBadRequest, "name is required")
		return
	}

	watchlist, err := ctrl.watchlistService.CreateWatchlist(ctx, req.Name)
	if err != nil {
		slog.Error("got error from watchlistService.CreateWatchlist", slog.String("rqID", rqID), slog.String("err", err.Error()))
		writeErr(w, http.StatusInternalServerError, "Failed to create watchlist")
		return
	}

	writeJSON(w, http.StatusCreated, httpConverter.ConvertWatchlist(watchlist))
}

// POST /watchlists/{id}/items
func (ctrl *Controller) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	watchlistID, err := parseID(r, "id")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid watchlist id")
		return
	}

	var req httpModel.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Symbol) == "" {
		writeErr(w, http.StatusBadRequest, "symbol is required")
		return
	}

	item, err := ctrl.watchlistService.AddItem(ctx, watchlistID, req.Symbol)
	if err != nil {
		var invalidPrice *service.InvalidPriceError
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeErr(w, http.StatusNotFound, "Watchlist not found")
		case errors.As(err, &invalidPrice):
			writeJSON(w, http.StatusBadRequest, httpModel.ErrorResponse{
				Error: "Invalid price from Finnhub",
				Quote: invalidPrice.Quote,
			})
		case errors.Is(err, service.ErrValidation):
			writeErr(w, http.StatusBadRequest, "symbol is required")
		default:
			slog.Error("got error from watchlistService.AddItem", slog.String("rqID", rqID), slog.String("err", err.Error()))
			writeErr(w, http.StatusInternalServerError, "Failed to add symbol")
		}
		return
	}

	writeJSON(w, http.StatusCreated, httpConverter.ConvertWatchlistItem(item))
}

// GET /watchlists/{id}/items
func (ctrl *Controller) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	watchlistID, err := parseID(r, "id")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid watchlist id")
		return
	}

	items, err := ctrl.watchlistService.ListItems(ctx, watchlistID)
	if err != nil {
		slog.Error("got error from watchlistService.ListItems", slog.String("rqID", rqID), slog.String("err", err.Error()))
		writeErr(w, http.StatusInternalServerError, "Failed to get items")
		return
	}

	writeJSON(w, http.StatusOK, httpConverter.ConvertWatchlistItems(items))
}

// GET /watchlists/{id}/performance
func (ctrl *Controller) GetPerformance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	watchlistID, err := parseID(r, "id")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid watchlist id")
		return
	}

	perf, err := ctrl.watchlistService.GetPerformance(ctx, watchlistID)
	if err != nil {
		slog.Error("got error from watchlistService.GetPerformance", slog.String("rqID", rqID), slog.String("err", err.Error()))
		writeErr(w, http.StatusInternalServerError, "Failed to get performance")
		return
	}

	writeJSON(w, http.StatusOK, httpConverter.ConvertPerformance(perf))
}

// GET /watchlists/{id}/performance/export
func (ctrl *Controller) ExportPerformance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	watchlistID, err := parseID(r, "id")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid watchlist id")
		return
	}

	fileBytes, fileExtension, err := ctrl.watchlistService.ExportPerformance(ctx, watchlistID)
	if err != nil {
		slog.Error("got error from watchlistService.ExportPerformance", slog.String("rqID", rqID), slog.String("err", err.Error()))
		writeErr(w, http.StatusInternalServerError, "Failed to export performance")
		return
	}

	filename := fmt.Sprintf("watchlist_%d_performance%s", watchlistID, fileExtension)
	w.Header().Set("Content-Type", xlsxMimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(fileBytes)
}

// DELETE /watchlists/{id}/items/{itemId}
func (ctrl *Controller) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	watchlistID, err := parseID(r, "id")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid watchlist id")
		return
	}

	itemID, err := parseID(r, "itemId")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := ctrl.watchlistService.DeleteItem(ctx, watchlistID, itemID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "Item not found in this watchlist")
			return
		}
		slog.Error("got error from watchlistService.DeleteItem", slog.String("rqID", rqID), slog.String("err", err.Error()))
		writeErr(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	writeJSON(w, http.StatusOK, httpModel.DeleteItemResponse{
		Message: "Item deleted",
		Item:    httpConverter.ConvertWatchlistItem(item),
	})
}
