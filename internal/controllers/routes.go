package controllers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter assembles the middleware stack and routes. Extracted from server
// startup so handler tests can mount the real router.
func NewRouter(system *SystemController, analyze *AnalyzeController, static *StaticController) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The test page may be served from a different origin during
	// development, so the API answers cross-origin browser calls.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/", system.GetHome)
	r.Get("/api/health", system.GetHealth)
	r.Post("/api/analyze-game", analyze.PostAnalyze)
	r.Post("/api/test", analyze.PostTest)
	r.Get("/test", static.GetTestPage)

	return r
}
