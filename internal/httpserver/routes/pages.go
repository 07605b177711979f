package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
	"github.com/ymatsumoto/startpage/internal/httpserver/handlers"
)

func init() { Register(registerPages) }

func registerPages(r chi.Router, d deps.Deps) {
	r.Route("/api/pages", func(r chi.Router) {
		r.Post("/", handlers.AddPage(d))
		r.Put("/order", handlers.ReorderPages(d))
		r.Patch("/{id}", handlers.UpdatePage(d))
		r.Delete("/{id}", handlers.RemovePage(d))
		r.Post("/{id}/hide", handlers.TogglePageHide(d))
	})
}
