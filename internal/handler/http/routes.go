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
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/logout", h.logout)

		r.Get("/api/tasks/{taskID}", h.taskDetails)
		r.Delete("/api/tasks/{taskID}", h.deleteTask)
	})

	// the board listing resolves the session when present but never
	// rejects: anonymous visitors get empty buckets
	router.Group(func(r chi.Router) {
		r.Use(h.identify)

		r.Get("/api/tasks", h.listTasks)
	})

	// writes require an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/tasks", h.createTask)
		r.Put("/api/tasks/{taskID}", h.updateTask)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
