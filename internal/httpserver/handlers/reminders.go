package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
)

type addReminderRequest struct {
	Text         string `json:"text"`
	Time         string `json:"time"`
	HideOnStream bool   `json:"hideOnStream"`
}

type updateReminderRequest struct {
	Text         *string `json:"text"`
	Time         *string `json:"time"`
	HideOnStream *bool   `json:"hideOnStream"`
}

// AddReminder appends a reminder. Empty text is the silent guard.
func AddReminder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addReminderRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.AddReminder(req.Text, req.Time, req.HideOnStream)
		writeJSON(w, http.StatusOK, d.Store.Reminders())
	}
}

// UpdateReminder merges the provided fields into a reminder.
func UpdateReminder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateReminderRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.UpdateReminder(chi.URLParam(r, "id"), dashboard.ReminderUpdate{
			Text:         req.Text,
			Time:         req.Time,
			HideOnStream: req.HideOnStream,
		})
		writeJSON(w, http.StatusOK, d.Store.Reminders())
	}
}

// ToggleReminder flips a reminder's completed flag.
func ToggleReminder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ToggleReminder(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, d.Store.Reminders())
	}
}

// ToggleReminderHide flips a reminder's hide-on-stream flag.
func ToggleReminderHide(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ToggleReminderHide(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, d.Store.Reminders())
	}
}

// RemoveReminder deletes a reminder and clears its notified marker.
func RemoveReminder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.RemoveReminder(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, d.Store.Reminders())
	}
}

// ReorderReminders applies the drop order computed by the view layer.
func ReorderReminders(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.ReorderReminders(req.IDs)
		writeJSON(w, http.StatusOK, d.Store.Reminders())
	}
}
