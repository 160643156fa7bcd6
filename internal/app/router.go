package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/recipe-catalog/internal/config"
	"github.com/heartmarshall/recipe-catalog/internal/transport/middleware"
	"github.com/heartmarshall/recipe-catalog/internal/transport/rest"
)

// RouterDeps is everything NewRouter wires together.
type RouterDeps struct {
	Logger   *slog.Logger
	Recipes  *rest.RecipeHandler
	Health   *rest.HealthHandler
	Gatherer prometheus.Gatherer
	Metrics  *middleware.Metrics
	CORS     config.CORSConfig

	// Limiter is nil when rate limiting is disabled.
	Limiter           *middleware.RateLimiter
	RequestsPerMinute int
}

// NewRouter builds the HTTP handler with the full middleware chain.
// Probes and /metrics sit outside the rate limiter.
func NewRouter(d RouterDeps) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/recipes", d.Recipes.List)
	api.HandleFunc("GET /api/recipes/search", d.Recipes.Search)

	var limit middleware.Middleware
	if d.Limiter != nil {
		limit = d.Limiter.Limit(d.RequestsPerMinute)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", middleware.Chain(middleware.CORS(d.CORS), limit)(api))
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		d.Metrics.Middleware(),
	)(mux)
}
