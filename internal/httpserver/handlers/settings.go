package handlers

import (
	"net/http"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
)

type themeRequest struct {
	Theme string `json:"theme"`
}

type streamingRequest struct {
	IsStreaming bool `json:"isStreaming"`
}

type weatherLocationRequest struct {
	Location string `json:"location"`
}

type settingsResponse struct {
	Theme           string `json:"theme"`
	IsStreaming     bool   `json:"isStreaming"`
	WeatherLocation string `json:"weatherLocation"`
}

func currentSettings(d deps.Deps) settingsResponse {
	return settingsResponse{
		Theme:           d.Store.Theme(),
		IsStreaming:     d.Store.Streaming(),
		WeatherLocation: d.Store.WeatherLocation(),
	}
}

// SetTheme switches between light and dark.
func SetTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req themeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.SetTheme(req.Theme)
		writeJSON(w, http.StatusOK, currentSettings(d))
	}
}

// ToggleTheme flips the theme.
func ToggleTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ToggleTheme()
		writeJSON(w, http.StatusOK, currentSettings(d))
	}
}

// SetStreaming switches streaming mode, the filter that hides everything
// flagged hide-on-stream while screen sharing.
func SetStreaming(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req streamingRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.SetStreaming(req.IsStreaming)
		writeJSON(w, http.StatusOK, currentSettings(d))
	}
}

// SetWeatherLocation rebinds the weather widget and nudges the refresher
// so the new location shows up without waiting for the next interval.
func SetWeatherLocation(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req weatherLocationRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.SetWeatherLocation(req.Location)

		if d.WeatherTrigger != nil {
			select {
			case d.WeatherTrigger <- struct{}{}:
			default:
				// A refresh is already pending.
			}
		}

		writeJSON(w, http.StatusOK, currentSettings(d))
	}
}
