package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
	"github.com/ymatsumoto/startpage/internal/httpserver/handlers"
)

func init() { Register(registerReminders) }

func registerReminders(r chi.Router, d deps.Deps) {
	r.Route("/api/reminders", func(r chi.Router) {
		r.Post("/", handlers.AddReminder(d))
		r.Put("/order", handlers.ReorderReminders(d))
		r.Patch("/{id}", handlers.UpdateReminder(d))
		r.Delete("/{id}", handlers.RemoveReminder(d))
		r.Post("/{id}/toggle", handlers.ToggleReminder(d))
		r.Post("/{id}/hide", handlers.ToggleReminderHide(d))
	})
}
