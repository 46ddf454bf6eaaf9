package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/4insec/pasaka-api/internal/api"
	apiMiddleware "github.com/4insec/pasaka-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.credentialService)
	bibleHandler := api.NewBibleHandler(app.bibleStore)
	apiKeyAuth := apiMiddleware.NewAPIKeyAuth(app.accountStore)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Bible endpoints require a valid API key
		r.Group(func(r chi.Router) {
			r.Use(apiKeyAuth.Authenticate)

			r.Get("/bible/books", bibleHandler.ListBooks)
			r.Get("/bible/books/{book_id}", bibleHandler.GetBook)
			r.Get("/bible/books/{book_id}/{chapter}", bibleHandler.GetChapter)
			r.Get("/bible/books/{book_id}/{chapter}/{verse}", bibleHandler.GetVerse)
			r.Post("/bible/search", bibleHandler.Search)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
