package http

import (
	"net/http"

	customMW "github.com/KotFed0t/stock_watchlist/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMW "github.com/go-chi/chi/v5/middleware"
)

type MetricsExporter interface {
	customMW.MetricsObserver
	Handler() http.Handler
}

func NewRouter(ctrl *Controller, m MetricsExporter) http.Handler {
	r := chi.NewRouter()

	r.Use(customMW.Logger())
	r.Use(customMW.Metrics(m))
	r.Use(chiMW.Recoverer)

	r.Get("/", ctrl.Health)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Get("/quote/{symbol}", ctrl.GetQuote)

	r.Route("/watchlists", func(r chi.Router) {
		r.Post("/", ctrl.CreateWatchlist)

		r.Route("/{id}", func(r chi.Router) {
			r.Post("/items", ctrl.AddItem)
			r.Get("/items", ctrl.ListItems)
			r.Delete("/items/{itemId}", ctrl.DeleteItem)
			r.Get("/performance", ctrl.GetPerformance)
			r.Get("/performance/export", ctrl.ExportPerformance)
		})
	})

	r.NotFound(ctrl.Static)
	r.MethodNotAllowed(ctrl.Static)

	return r
}
