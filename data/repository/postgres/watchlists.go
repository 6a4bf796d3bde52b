package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/KotFed0t/stock_watchlist/data/repository"
	"github.com/KotFed0t/stock_watchlist/internal/converter/dbConverter"
	"github.com/KotFed0t/stock_watchlist/internal/model"
	"github.com/KotFed0t/stock_watchlist/internal/model/dbModel"
	"github.com/KotFed0t/stock_watchlist/utils"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/shopspring/decimal"
)

const undefinedTableCode = "42P01"

func (r *Postgres) CreateWatchlist(ctx context.Context, name string) (watchlist model.Watchlist, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO watchlists(name) VALUES($1) RETURNING id, name`

	slog.Debug("CreateWatchlist start", slog.String("rqID", rqID), slog.String("query", query))
	defer func() {
		if err != nil {
			slog.Error("CreateWatchlist failed", slog.String("rqID", rqID), slog.String("err", err.Error()))
		} else {
			slog.Debug("CreateWatchlist completed", slog.String("rqID", rqID))
		}
	}()

	dbWatchlist := dbModel.Watchlist{}
	err = r.txOrDb(ctx).QueryRowxContext(ctx, query, name).StructScan(&dbWatchlist)
	if err != nil {
		return model.Watchlist{}, wrapPgErr(err)
	}

	return dbConverter.ConvertWatchlist(dbWatchlist), nil
}

func (r *Postgres) WatchlistExists(ctx context.Context, watchlistID int64) (exists bool, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT EXISTS(SELECT 1 FROM watchlists WHERE id = $1)`

	slog.Debug("WatchlistExists start", slog.String("rqID", rqID), slog.String("query", query))
	defer func() {
		if err != nil {
			slog.Error("WatchlistExists failed", slog.String("rqID", rqID), slog.String("err", err.Error()))
		} else {
			slog.Debug("WatchlistExists completed", slog.String("rqID", rqID), slog.Bool("exists", exists))
		}
	}()

	err = r.txOrDb(ctx).GetContext(ctx, &exists, query, watchlistID)
	if err != nil {
		return false, wrapPgErr(err)
	}

	return exists, nil
}

// LockWatchlist takes a share lock on the watchlist row until the surrounding transaction ends,
// so it cannot be deleted while items are being inserted.
func (r *Postgres) LockWatchlist(ctx context.Context, watchlistID int64) (err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT id FROM watchlists WHERE id = $1 FOR SHARE`

	slog.Debug("LockWatchlist start", slog.String("rqID", rqID), slog.String("query", query))
	defer func() {
		if err != nil {
			slog.Error("LockWatchlist failed", slog.String("rqID", rqID), slog.String("err", err.Error()))
		} else {
			slog.Debug("LockWatchlist completed", slog.String("rqID", rqID))
		}
	}()

	var id int64
	err = r.txOrDb(ctx).GetContext(ctx, &id, query, watchlistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return wrapPgErr(err)
	}

	return nil
}

func (r *Postgres) InsertWatchlistItem(ctx context.Context, watchlistID int64, symbol string, initialPrice decimal.Decimal) (item model.WatchlistItem, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `
		INSERT INTO watchlist_items(watchlist_id, symbol, initial_price)
		VALUES($1, $2, $3)
		RETURNING id, watchlist_id, symbol, initial_price, added_at
		`

	slog.Debug("InsertWatchlistItem start", slog.String("rqID", rqID), slog.String("query", query))
	defer func() {
		if err != nil {
			slog.Error("InsertWatchlistItem failed", slog.String("rqID", rqID), slog.String("err", err.Error()))
		} else {
			slog.Debug("InsertWatchlistItem completed", slog.String("rqID", rqID), slog.Int64("itemID", item.ID))
		}
	}()

	dbItem := dbModel.WatchlistItem{}
	err = r.txOrDb(ctx).QueryRowxContext(ctx, query, watchlistID, symbol, initialPrice).StructScan(&dbItem)
	if err != nil {
		return model.WatchlistItem{}, wrapPgErr(err)
	}

	return dbConverter.ConvertWatchlistItem(dbItem), nil
}

func (r *Postgres) GetWatchlistItems(ctx context.Context, watchlistID int64) (items []model.WatchlistItem, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `
		SELECT id, watchlist_id, symbol, initial_price, added_at
		FROM watchlist_items
		WHERE watchlist_id = $1
		ORDER BY id
		`

	slog.Debug("GetWatchlistItems start", slog.String("rqID", rqID), slog.String("query", query))
	defer func() {
		if err != nil {
			slog.Error("GetWatchlistItems failed", slog.String("rqID", rqID), slog.String("err", err.Error()))
		} else {
			slog.Debug("GetWatchlistItems completed", slog.String("rqID", rqID), slog.Int("count", len(items)))
		}
	}()

	rows, err := r.txOrDb(ctx).QueryxContext(ctx, query, watchlistID)
	if err != nil {
		return nil, wrapPgErr(err)
	}

	defer rows.Close()

	items = make([]model.WatchlistItem, 0)
	for rows.Next() {
		var dbItem dbModel.WatchlistItem
		err = rows.StructScan(&dbItem)
		if err != nil {
			return nil, err
		}
		items = append(items, dbConverter.ConvertWatchlistItem(dbItem))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *Postgres) DeleteWatchlistItem(ctx context.Context, watchlistID, itemID int64) (item model.WatchlistItem, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `
		DELETE FROM watchlist_items
		WHERE watchlist_id = $1 AND id = $2
		RETURNING id, watchlist_id, symbol, initial_price, added_at
		`

	slog.Debug("DeleteWatchlistItem start", slog.String("rqID", rqID), slog.String("query", query))
	defer func() {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			slog.Error("DeleteWatchlistItem failed", slog.String("rqID", rqID), slog.String("err", err.Error()))
		} else {
			slog.Debug("DeleteWatchlistItem completed", slog.String("rqID", rqID))
		}
	}()

	dbItem := dbModel.WatchlistItem{}
	err = r.txOrDb(ctx).QueryRowxContext(ctx, query, watchlistID, itemID).StructScan(&dbItem)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WatchlistItem{}, repository.ErrNotFound
		}
		return model.WatchlistItem{}, wrapPgErr(err)
	}

	return dbConverter.ConvertWatchlistItem(dbItem), nil
}

func (r *Postgres) GetTrackedSymbols(ctx context.Context) (symbols []string, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT DISTINCT symbol FROM watchlist_items ORDER BY symbol`

	slog.Debug("GetTrackedSymbols start", slog.String("rqID", rqID), slog.String("query", query))
	defer func() {
		if err != nil {
			slog.Error("GetTrackedSymbols failed", slog.String("rqID", rqID), slog.String("err", err.Error()))
		} else {
			slog.Debug("GetTrackedSymbols completed", slog.String("rqID", rqID), slog.Int("count", len(symbols)))
		}
	}()

	symbols = make([]string, 0)
	err = r.txOrDb(ctx).SelectContext(ctx, &symbols, query)
	if err != nil {
		return nil, wrapPgErr(err)
	}

	return symbols, nil
}

// wrapPgErr adds a hint for the most common misconfiguration: the schema was never created.
func wrapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode {
		return errors.Join(repository.ErrSchemaMissing, err)
	}
	return err
}
