package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/KotFed0t/stock_watchlist/config"
)

type HTTPServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
	errCh           chan error
}

func New(cfg *config.Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:         net.JoinHostPort("", strconv.Itoa(cfg.HTTP.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		},
		shutdownTimeout: cfg.HTTP.ShutdownTimeout,
		errCh:           make(chan error, 1),
	}
}

// Start listens in the background. A listen failure is delivered on Err.
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("http server listening", slog.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", slog.String("err", err.Error()))
			s.errCh <- err
		}
	}()
}

func (s *HTTPServer) Err() <-chan error {
	return s.errCh
}

func (s *HTTPServer) Stop() {
	slog.Info("start stopping http server")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("http server graceful shutdown failed", slog.String("err", err.Error()))
		return
	}

	slog.Info("http server stopped")
}
