package handle

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes mounts the web UI and the JSON API.
func (h *Handle) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Healthz)
	r.Get("/", h.Index)
	r.Post("/analyze", h.Analyze)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", h.AnalyzeJSON)
		r.Get("/history", h.History)
	})
	return r
}
