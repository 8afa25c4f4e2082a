package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/config"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/handler"
)

// NewRouter wires the operational HTTP surface: health probe, metrics and
// the read-only daily summary. POS mutations stay on the Go API.
func NewRouter(cfg config.Config,
	logger *slog.Logger,
	health handler.HealthHandler,
	summary handler.SummaryHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	health.RegisterRoutes(r)
	summary.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	return r
}
