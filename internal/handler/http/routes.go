package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
	})

	// collection and statistics routes require a valid access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/cameras", func(r chi.Router) {
			r.Get("/", h.listCameras)
			r.Post("/", h.createCamera)
			r.Get("/{id}", h.getCamera)
			r.Patch("/{id}", h.updateCamera)
			r.Delete("/{id}", h.deleteCamera)
		})

		r.Route("/api/stats", func(r chi.Router) {
			r.Get("/brands", h.statsByBrand)
			r.Get("/types", h.statsByType)
			r.Get("/decades", h.statsByDecade)
			r.Get("/value", h.statsValue)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
