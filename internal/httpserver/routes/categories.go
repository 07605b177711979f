package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
	"github.com/ymatsumoto/startpage/internal/httpserver/handlers"
)

func init() { Register(registerCategories) }

func registerCategories(r chi.Router, d deps.Deps) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Post("/", handlers.AddCategory(d))
		r.Put("/order", handlers.ReorderCategories(d))
		r.Put("/active", handlers.SetActiveCategory(d))
		r.Patch("/{id}", handlers.RenameCategory(d))
		r.Delete("/{id}", handlers.RemoveCategory(d))
	})
}
