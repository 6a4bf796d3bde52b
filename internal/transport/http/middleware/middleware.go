package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/KotFed0t/stock_watchlist/utils"
	"github.com/go-chi/chi/v5"
	chiMW "github.com/go-chi/chi/v5/middleware"
)

const RequestIDHeader = "X-Request-Id"

type MetricsObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger assigns a request id, exposes it in the response header and logs request boundaries.
func Logger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()

			ctx := utils.CreateCtxWithRqID(r.Context(), r.Header.Get(RequestIDHeader))
			rqID := utils.GetRequestIDFromCtx(ctx)
			w.Header().Set(RequestIDHeader, rqID)

			ww := chiMW.NewWrapResponseWriter(w, r.ProtoMajor)

			slog.Info(
				"start request",
				slog.String("rqID", rqID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			defer func() {
				slog.Info(
					"request finished",
					slog.String("rqID", rqID),
					slog.Int("status", ww.Status()),
					slog.String("request duration", fmt.Sprintf("%.3fs", time.Since(now).Seconds())),
				)
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}

// Metrics records every request under its chi route pattern.
func Metrics(m MetricsObserver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			ww := chiMW.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.ObserveHTTPRequest(r.Method, route, status, time.Since(now))
		})
	}
}
