package router

import (
	"net/http"

	"cafe-pos/internal/handler"
	"cafe-pos/internal/metrics"
	"cafe-pos/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Kiosk    *handler.KioskHandler
	Terminal *handler.TerminalHandler
	Menu     *handler.MenuHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, m *metrics.Metrics, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware order: Recovery -> Logging -> CORS -> Metrics
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics(m))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/kiosk", h.Kiosk.RegisterRoutes)
	r.Route("/api/terminal", func(r chi.Router) {
		h.Terminal.RegisterRoutes(r)
		h.Menu.RegisterRoutes(r)
	})

	return r
}
