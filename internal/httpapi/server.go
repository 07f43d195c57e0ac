// Package httpapi serves the front-end: server-rendered pages backed by the
// REST API client, plus health, readiness and metrics endpoints.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studio/internal/views"
)

// NewMux builds the front-end router.
func NewMux(cfg Config) http.Handler {
	p := &pages{
		cfg:    cfg,
		render: cfg.Renderer,
		local:  &http.Client{Transport: handlerTransport{h: apiRoutes(cfg.API)}},
	}
	if p.render == nil {
		p.render = views.MustRenderer()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(MetricsMiddleware)

	r.Get("/", p.home)
	r.Post("/echo", p.echo)
	r.Get("/training", p.training)
	r.Post("/training", p.submitTraining)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", p.ready)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	if cfg.API != nil {
		r.Mount("/api", cfg.API)
	} else {
		r.HandleFunc("/api/*", apiNotFound)
	}

	MountSwagger(r)
	return r
}
