package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"pricecomp-service/internal/config"
	"pricecomp-service/internal/middleware"
	perfHnd "pricecomp-service/internal/perfume/handler"
	"pricecomp-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// price comparison
	r.Post("/analyze", perfHnd.Analyze(cfg, logger))
	r.Post("/analyze/export", perfHnd.Export(cfg, logger))

	return r
}
