package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sample-user-api/internal/config"
	"sample-user-api/internal/handler"
	"sample-user-api/internal/middleware"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Health *handler.HealthHandler
	Docs   *handler.DocsHandler
}

// New assembles the route table. When sessions are disabled the login and
// register routes are absent and every users route is public.
func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/", handler.Welcome)
	r.Get("/health", h.Health.Check)
	r.Get("/openapi.yaml", h.Docs.OpenAPI)

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.AuthEnabled {
			api.Post("/login", h.Auth.Login)
			api.Post("/register", h.Auth.Register)

			api.With(authMiddleware.RequireAuth).Get("/users", h.User.List)
			api.With(authMiddleware.RequireAuth).Post("/users", h.User.Create)
			api.With(authMiddleware.RequireAuth).Delete("/users/{id}", h.User.Delete)
			return
		}

		api.Get("/users", h.User.List)
		api.Post("/users", h.User.Create)
		api.Delete("/users/{id}", h.User.Delete)
	})

	return r
}
