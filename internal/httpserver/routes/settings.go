package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
	"github.com/ymatsumoto/startpage/internal/httpserver/handlers"
)

func init() { Register(registerSettings) }

func registerSettings(r chi.Router, d deps.Deps) {
	r.Route("/api/settings", func(r chi.Router) {
		r.Put("/theme", handlers.SetTheme(d))
		r.Post("/theme/toggle", handlers.ToggleTheme(d))
		r.Put("/streaming", handlers.SetStreaming(d))
		r.Put("/weather-location", handlers.SetWeatherLocation(d))
	})
}
