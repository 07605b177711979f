package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
	"github.com/ymatsumoto/startpage/internal/httpserver/handlers"
)

func init() { Register(registerState) }

func registerState(r chi.Router, d deps.Deps) {
	r.Get("/api/state", handlers.State(d))
}
