package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
	"github.com/ymatsumoto/startpage/internal/httpserver/handlers"
)

func init() { Register(registerWeather) }

func registerWeather(r chi.Router, d deps.Deps) {
	r.Get("/api/weather", handlers.Weather(d))
	r.Post("/api/weather/refresh", handlers.RefreshWeather(d))
}
