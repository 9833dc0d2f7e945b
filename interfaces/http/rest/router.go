package rest

import (
	"net/http"

	"products-backend/infrastructure/config"
	"products-backend/interfaces/gateway"
	"products-backend/interfaces/http/rest/middleware"
	"products-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	handlers  *gateway.Handlers
	collector *observability.Collector
	cfg       *config.Config
	logger    *zap.Logger
}

// NewRouter creates a new router instance. A nil collector disables the
// Prometheus middleware and the /metrics route.
func NewRouter(
	handlers *gateway.Handlers,
	collector *observability.Collector,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		handlers:  handlers,
		collector: collector,
		cfg:       cfg,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.collector != nil {
		router.Use(middleware.Metrics(rt.collector))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	if rt.collector != nil {
		router.Handle("/metrics", rt.collector.Handler())
	}

	router.Route("/products", func(r chi.Router) {
		r.Use(middleware.Claims(rt.logger))

		productHandler := NewProductHandler(rt.handlers, rt.logger)
		r.Post("/", productHandler.CreateProduct)
		r.Get("/{productId}/{category}", productHandler.GetProduct)
		r.Put("/{productId}/{category}", productHandler.UpdateProduct)
		r.Delete("/{productId}", productHandler.DeleteProduct)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
