package app

import (
	"net/http"

	"github.com/avc-dev/brevly/internal/config"
	"github.com/avc-dev/brevly/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(deps *dependencies, logger *zap.Logger, cfg *config.Config) http.Handler {
	h := deps.handler
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders(logger))
	r.Use(middleware.GzipMiddleware(logger))

	// Несопоставленные GET пути пробуются как короткие коды
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	authMiddleware := middleware.NewAuthMiddleware(deps.authService, logger)

	r.Get("/health", h.Health)

	if deps.filesRoot != "" {
		r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(deps.filesRoot))))
	}

	r.Route(cfg.APIPrefix, func(r chi.Router) {
		r.Route("/links", func(r chi.Router) {
			r.Post("/", h.CreateLink)
			r.Get("/", h.ListLinks)
			r.Get("/short/{shortUrl}", h.GetLinkByShortURL)
			r.Get("/{id}", h.GetLink)
			r.With(authMiddleware.RequireAdmin).Delete("/{id}", h.DeleteLink)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", h.ListReports)
			r.With(authMiddleware.RequireAdmin).Post("/csv", h.GenerateReport)
		})
	})

	r.Get("/{shortUrl}", h.Redirect)
	r.Head("/{shortUrl}", h.Redirect)

	return middleware.CORS(cfg.CORSOrigins)(r)
}
