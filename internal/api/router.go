package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	// All API routes will be under /api
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/login", apiHandler.LoginHandler)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Content browsing is public; premium gating happens in the shell.
		r.Get("/articles", apiHandler.SearchArticlesHandler)
		r.Get("/articles/{articleID}", apiHandler.GetArticleHandler)

		// User-authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(apiHandler.JWTAuthMiddleware)

			// Assistant routes
			r.Get("/assistant", apiHandler.GetAssistantHandler)
			r.Delete("/assistant", apiHandler.ResetAssistantHandler)
			r.Post("/assistant/messages", apiHandler.PostMessageHandler)
			r.Post("/assistant/retry", apiHandler.RetryHandler)
			r.Put("/assistant/language", apiHandler.SetLanguageHandler)
			r.Put("/assistant/plan", apiHandler.SetPlanHandler)

			// Repository result seeding an assistant inquiry
			r.Post("/articles/{articleID}/ask", apiHandler.AskArticleHandler)
		})
	})

	return r
}
