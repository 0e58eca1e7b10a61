package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/martinvlcek/shoplist-backend/api/controllers"
	"github.com/martinvlcek/shoplist-backend/api/middleware"
	"github.com/martinvlcek/shoplist-backend/internal/shoplist"
	"github.com/martinvlcek/shoplist-backend/pkg/config"
	"github.com/martinvlcek/shoplist-backend/pkg/logger"
	"github.com/martinvlcek/shoplist-backend/pkg/metrics"
	pkgredis "github.com/martinvlcek/shoplist-backend/pkg/redis"
)

// Params carries everything the router needs. Only cfg, logg and store are
// required; the rest degrade gracefully when absent.
type Params struct {
	Config      *config.Config
	Logger      *logger.Logger
	Store       shoplist.Store
	Idempotency pkgredis.IdempotencyStore
	Registry    *prometheus.Registry
	Ready       []controllers.Pinger
}

func NewRouter(p Params) http.Handler {
	cfg := p.Config
	logg := p.Logger

	var httpMetrics *metrics.HTTPMetrics
	if p.Registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(p.Registry)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.Ready...))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	readDelay := cfg.Latency.Read()
	writeDelay := cfg.Latency.Write()

	r.Route("/api/shopping-lists", func(r chi.Router) {
		r.Use(middleware.Idempotency(p.Idempotency, logg))

		r.With(middleware.Latency(writeDelay)).Get("/", controllers.ListShoppingLists(p.Store, logg))
		r.With(middleware.Latency(writeDelay)).Post("/", controllers.CreateShoppingList(p.Store, logg))

		r.Route("/{listID}", func(r chi.Router) {
			r.With(middleware.Latency(readDelay)).Get("/", controllers.GetShoppingList(p.Store, logg))
			r.With(middleware.Latency(writeDelay)).Put("/", controllers.UpdateShoppingList(p.Store, logg))
			r.With(middleware.Latency(readDelay)).Delete("/", controllers.DeleteShoppingList(p.Store, logg))
		})
	})

	if cfg.App.IsDev() {
		if resettable, ok := p.Store.(controllers.Resettable); ok {
			r.Post("/api/dev/reset", controllers.ResetStore(resettable, logg))
		}
	}

	return r
}
