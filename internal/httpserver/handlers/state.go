package handlers

import (
	"net/http"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/domain"
	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
)

type stateResponse struct {
	QuickPages      []domain.QuickPage   `json:"quickPages"`
	Categories      []domain.Category    `json:"categories"`
	ActiveCategory  string               `json:"activeCategory"`
	Reminders       []domain.Reminder    `json:"reminders"`
	MailServices    []domain.MailService `json:"mailServices"`
	Notes           []domain.Note        `json:"notes"`
	Theme           string               `json:"theme"`
	IsStreaming     bool                 `json:"isStreaming"`
	WeatherLocation string               `json:"weatherLocation"`
}

func toStateResponse(st dashboard.State) stateResponse {
	return stateResponse{
		QuickPages:      st.QuickPages,
		Categories:      st.Categories,
		ActiveCategory:  st.ActiveCategory,
		Reminders:       st.Reminders,
		MailServices:    st.MailServices,
		Notes:           st.Notes,
		Theme:           st.Theme,
		IsStreaming:     st.Streaming,
		WeatherLocation: st.WeatherLocation,
	}
}

// State returns the full dashboard snapshot the front-end renders from.
func State(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toStateResponse(d.Store.Snapshot()))
	}
}
