package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handler builds the router with all middleware and routes mounted.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/signin", s.handleSignin)
	})

	r.Route("/api/todos", func(r chi.Router) {
		r.Use(s.requireUser)

		r.Get("/", s.handleListTodos)
		r.Post("/", s.handleCreateTodo)
		r.Route("/{todo_id}", func(r chi.Router) {
			r.Get("/", s.handleGetTodo)
			r.Put("/", s.handleUpdateTodo)
			r.Delete("/", s.handleDeleteTodo)
			r.Patch("/toggle", s.handleToggleTodo)
		})
	})

	return r
}
