package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/portfolio/backend/pkg/auth"
)

// RouterConfig carries the cross-cutting settings the router needs.
type RouterConfig struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

// NewRouter assembles the full route table. Reads are public; every
// mutating route sits behind the bearer-token guard.
func NewRouter(
	h *Handler,
	authHandler *AuthHandler,
	projectHandler *ProjectHandler,
	postHandler *PostHandler,
	contactHandler *ContactHandler,
	cfg RouterConfig,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/api/health", h.Health)

	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/register", authHandler.Register)

	r.Get("/api/projects", projectHandler.List)
	r.Get("/api/blogs", postHandler.List)
	r.Get("/api/blogs/slug/{slug}", postHandler.GetBySlug)
	r.Get("/api/blogs/{id}", postHandler.Get)

	r.Post("/api/contact", contactHandler.Submit)

	// 認証必要エンドポイント（ミューテーション系のみ）
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAuth(cfg.JWTSecret))
		pr.Post("/api/projects", projectHandler.Create)
		pr.Put("/api/projects/{id}", projectHandler.Update)
		pr.Delete("/api/projects/{id}", projectHandler.Delete)
		pr.Post("/api/blogs", postHandler.Create)
		pr.Put("/api/blogs/{id}", postHandler.Update)
		pr.Delete("/api/blogs/{id}", postHandler.Delete)
	})

	return r
}
