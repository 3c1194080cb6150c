// Package app contains the application setup for the products service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/products-api/internal/config"
	"github.com/abgdnv/products-api/internal/service"
	"github.com/abgdnv/products-api/internal/store"
	"github.com/abgdnv/products-api/internal/transport/rest"
	"github.com/abgdnv/products-api/pkg/server"
	"github.com/abgdnv/products-api/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// SetupDependencies builds the in-memory store seeded with the default
// catalog and the service on top of it.
func SetupDependencies(logger *slog.Logger) *Dependencies {
	pService := service.NewService(store.NewInMemoryStore(store.DefaultCatalog()...))

	return &Dependencies{
		ProductService: pService,
		Logger:         logger,
	}
}

// SetupHttpHandler assembles the router and middleware pipeline.
// Also used by tests to run the full application in-process.
func SetupHttpHandler(deps *Dependencies, apiKey string) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps, apiKey)
	return mux
}

// wireRoutes sets up the HTTP routes. Authentication guards the /api subtree
// only; the greeting and operational endpoints stay public.
func wireRoutes(mux *chi.Mux, deps *Dependencies, apiKey string) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)

	mux.Get("/", productHandler.Hello)
	mux.Get("/healthz", productHandler.HealthCheck)
	mux.Handle("/metrics", promhttp.Handler())

	mux.Route("/api", func(r chi.Router) {
		r.Use(web.APIKeyAuth(apiKey, deps.Logger))
		productHandler.RegisterRoutes(r)
	})
}

// SetupHttpServer creates and configures the HTTP server for the service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps, cfg.Auth.APIKey)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
