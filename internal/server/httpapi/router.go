// Package httpapi exposes the dictionary and authentication services over
// HTTP. It is the only layer aware of status codes: services speak in
// sentinel errors and the handlers translate them at the boundary.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dbellanger/lexico/internal/logging"
	"github.com/dbellanger/lexico/internal/server/auth"
)

// NewRouter constructs the HTTP handler serving the lexico API.
//
// Routes:
//
//	POST /api/auth/register  → AuthHandler.Register
//	POST /api/auth/login     → AuthHandler.Login
//	GET  /api/auth/me        → AuthHandler.Me          (protected)
//	GET  /api/word           → WordHandler.List        (protected)
//	POST /api/word           → WordHandler.Create      (protected)
//	GET  /api/word/{id}      → WordHandler.Get         (protected)
//	PUT  /api/word/{id}      → WordHandler.Update      (protected)
//	DELETE /api/word/{id}    → WordHandler.Delete      (protected)
func NewRouter(
	authHandler *AuthHandler,
	wordHandler *WordHandler,
	tokens *auth.TokenManager,
	logger logging.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(WithAuthentication(tokens))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/word", func(r chi.Router) {
				r.Get("/", wordHandler.List)
				r.Post("/", wordHandler.Create)
				r.Get("/{id}", wordHandler.Get)
				r.Put("/{id}", wordHandler.Update)
				r.Delete("/{id}", wordHandler.Delete)
			})
		})
	})

	return r
}
