package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
	"github.com/ymatsumoto/startpage/internal/httpserver/handlers"
)

func init() { Register(registerNotes) }

func registerNotes(r chi.Router, d deps.Deps) {
	r.Route("/api/notes", func(r chi.Router) {
		r.Post("/", handlers.AddNote(d))
		r.Put("/order", handlers.ReorderNotes(d))
		r.Patch("/{id}", handlers.UpdateNote(d))
		r.Delete("/{id}", handlers.RemoveNote(d))
		r.Post("/{id}/pin", handlers.TogglePinNote(d))
		r.Post("/{id}/hide", handlers.ToggleNoteHide(d))
	})
}
