/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/defaults      Baseline charges
  /api/estimate      Single-year breakdown
  /api/projection    Multi-year projection
  /api/scenarios/*   Preset what-if scenarios
  /                  Minimal index page listing endpoints

SECURITY NOTE:
  No authentication middleware. The API is a stateless calculator with no
  side effects, so every endpoint is public by design.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/defaults", h.GetDefaults)
		r.Post("/estimate", h.Estimate)
		r.Post("/projection", h.Project)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>UK Electricity Cost Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>UK Electricity Cost Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/defaults">/api/defaults</a> - Baseline charge values</li>
<li>POST /api/estimate - Single-year cost breakdown</li>
<li>POST /api/projection - Multi-year projection (table + chart series)</li>
<li><a href="/api/scenarios">/api/scenarios</a> - Preset what-if scenarios</li>
</ul>
</body>
</html>`))
	})

	return r
}
