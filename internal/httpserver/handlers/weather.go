package handlers

import (
	"net/http"
	"time"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
	"github.com/ymatsumoto/startpage/internal/logger"
	"github.com/ymatsumoto/startpage/internal/weather"
)

type weatherResponse struct {
	weather.Readout
	Location string    `json:"location"`
	AsOf     time.Time `json:"asOf,omitzero"`
}

// Weather returns the latest readout held by the refresher.
func Weather(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readout, asOf := d.Weather.Current()
		writeJSON(w, http.StatusOK, weatherResponse{
			Readout:  readout,
			Location: d.Store.WeatherLocation(),
			AsOf:     asOf,
		})
	}
}

// RefreshWeather triggers a manual refresh.
func RefreshWeather(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case d.WeatherTrigger <- struct{}{}:
			d.Logger.Info("manual weather refresh triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
		default:
			d.Logger.Warn("weather refresh already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}
}
