package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/KotFed0t/stock_watchlist/internal/model/finnhubModel"
	"github.com/KotFed0t/stock_watchlist/utils"
	"github.com/redis/go-redis/v9"
)

const quoteKeyPrefix = "quote:"

var ErrCacheMiss = errors.New("cache miss")

type RedisCache struct {
	redis           *redis.Client
	quoteExpiration time.Duration
}

func NewRedisCache(redisClient *redis.Client, quoteExpiration time.Duration) *RedisCache {
	return &RedisCache{redis: redisClient, quoteExpiration: quoteExpiration}
}

func quoteKey(symbol string) string {
	return quoteKeyPrefix + symbol
}

func (r *RedisCache) SetQuotes(ctx context.Context, quotes map[string]finnhubModel.Quote) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("start SetQuotes", slog.String("rqID", rqID), slog.Int("count", len(quotes)))

	pipe := r.redis.Pipeline()
	for symbol, quote := range quotes {
		quoteJson, err := json.Marshal(quote)
		if err != nil {
			slog.Error(
				"can't marshall quote in SetQuotes",
				slog.String("rqID", rqID),
				slog.String("err", err.Error()),
				slog.String("symbol", symbol),
			)
			return errors.New("can't marshall quote")
		}

		pipe.Set(ctx, quoteKey(symbol), quoteJson, r.quoteExpiration)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		slog.Error("failed on pipe.Exec", slog.String("rqID", rqID), slog.String("err", err.Error()))
		return err
	}

	slog.Debug("SetQuotes completed", slog.String("rqID", rqID))

	return nil
}

func (r *RedisCache) SetQuote(ctx context.Context, symbol string, quote finnhubModel.Quote) error {
	return r.SetQuotes(ctx, map[string]finnhubModel.Quote{symbol: quote})
}

func (r *RedisCache) GetQuote(ctx context.Context, symbol string) (finnhubModel.Quote, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("GetQuote start", slog.String("rqID", rqID), slog.String("symbol", symbol))

	res, err := r.redis.Get(ctx, quoteKey(symbol)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return finnhubModel.Quote{}, ErrCacheMiss
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.String("symbol", symbol))
		return finnhubModel.Quote{}, err
	}

	quote := finnhubModel.Quote{}
	err = json.Unmarshal([]byte(res), &quote)
	if err != nil {
		slog.Error(
			"can't unmarshall quote in GetQuote",
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.String("resultFromRedis", res),
		)
		return finnhubModel.Quote{}, errors.New("can't unmarshall quote")
	}

	slog.Debug("GetQuote finished", slog.String("rqID", rqID))

	return quote, nil
}
