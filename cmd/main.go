package main

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KotFed0t/stock_watchlist/config"
	"github.com/KotFed0t/stock_watchlist/data"
	"github.com/KotFed0t/stock_watchlist/data/cache"
	"github.com/KotFed0t/stock_watchlist/data/repository/postgres"
	"github.com/KotFed0t/stock_watchlist/internal/externalApi/finnhubApi"
	"github.com/KotFed0t/stock_watchlist/internal/httpserver"
	"github.com/KotFed0t/stock_watchlist/internal/metrics"
	"github.com/KotFed0t/stock_watchlist/internal/reportGenerator/xslsxGenerator"
	"github.com/KotFed0t/stock_watchlist/internal/scheduler"
	"github.com/KotFed0t/stock_watchlist/internal/service/watchlistService"
	httpTransport "github.com/KotFed0t/stock_watchlist/internal/transport/http"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	pgClient := data.NewPostgresClient(cfg)
	defer pgClient.Close()

	pgRepo := postgres.NewPostgres(pgClient)

	m := metrics.New()

	// stays a nil interface when redis is off
	var quoteCache watchlistService.Cache
	if redisClient := data.NewRedisClient(cfg); redisClient != nil {
		defer redisClient.Close()
		quoteCache = cache.NewRedisCache(redisClient, cfg.Cache.QuoteExpiration)
	}

	finnhubApiClient := finnhubApi.New(cfg, m)

	reportGenerator := xslsxGenerator.New()

	watchlistSrv := watchlistService.New(cfg, pgRepo, quoteCache, finnhubApiClient, reportGenerator, m)

	if quoteCache != nil && cfg.Jobs.RefreshQuoteCacheInterval > 0 {
		sched := scheduler.New()
		sched.NewIntervalJob("refresh quote cache", watchlistSrv.RefreshQuoteCache, cfg.Jobs.RefreshQuoteCacheInterval, true)
		sched.Start()
		defer sched.Stop()
	}

	ctrl := httpTransport.NewController(watchlistSrv, cfg.HTTP.StaticDir)

	server := httpserver.New(cfg, httpTransport.NewRouter(ctrl, m))
	server.Start()
	defer server.Stop()

	// Waiting interruption signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case <-interrupt:
	case err := <-server.Err():
		slog.Error("http server failed, shutting down", slog.String("err", err.Error()))
	}
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}

	log := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
