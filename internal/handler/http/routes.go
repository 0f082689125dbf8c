package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	router.Handle("/metrics", h.metrics.Handler())

	if h.server.StaticDir != "" {
		router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(h.server.StaticDir))))
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version/", h.getServerVersion)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Post("/auth/logout", h.logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)

			r.Get("/models", h.listModels)
			r.Post("/models", h.createModel)
			r.Get("/models/{id}", h.getModel)
			r.Put("/models/{id}", h.updateModel)
			r.Delete("/models/{id}", h.deleteModel)
			r.Post("/models/{id}/views", h.addView)

			r.With(h.assetsEnabled).Post("/assets", h.uploadAsset)
			r.With(h.assetsEnabled).Get("/assets/{owner}/{name}", h.getAsset)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
