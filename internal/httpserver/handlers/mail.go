package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
)

type addMailRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AddMail appends a mail shortcut. Empty name or url is the silent guard.
func AddMail(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addMailRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.AddMailService(req.Name, req.URL)
		writeJSON(w, http.StatusOK, d.Store.MailServices())
	}
}

// RemoveMail deletes a mail shortcut (idempotent).
func RemoveMail(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.RemoveMailService(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, d.Store.MailServices())
	}
}
