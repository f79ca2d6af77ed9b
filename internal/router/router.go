package router

import (
	"net/http"

	"fastfood/internal/handler"
	"fastfood/internal/metrics"
	"fastfood/internal/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Products      *handler.ProductHandler
	AdminProducts *handler.AdminProductHandler
	Sales         *handler.SaleHandler
	Rules         *handler.RulesHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	h Handlers,
	serverMetrics *metrics.ServerMetrics,
	gatherer prometheus.Gatherer,
	adminAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})
	mux.Handle("/metrics", metrics.Handler(gatherer))

	mux.HandleFunc("/products", h.Products.List)
	mux.HandleFunc("/admin/products", h.AdminProducts.Route)
	mux.HandleFunc("/sales", h.Sales.Route)
	mux.HandleFunc("/validation/rules", h.Rules.Get)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> Metrics -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(adminAPIKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Metrics(serverMetrics)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
