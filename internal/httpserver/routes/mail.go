package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
	"github.com/ymatsumoto/startpage/internal/httpserver/handlers"
)

func init() { Register(registerMail) }

func registerMail(r chi.Router, d deps.Deps) {
	r.Route("/api/mail", func(r chi.Router) {
		r.Post("/", handlers.AddMail(d))
		r.Delete("/{id}", handlers.RemoveMail(d))
	})
}
