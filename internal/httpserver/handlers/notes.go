package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
)

type addNoteRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	HideOnStream bool   `json:"hideOnStream"`
}

type updateNoteRequest struct {
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	HideOnStream *bool   `json:"hideOnStream"`
}

// AddNote appends a sticky note. Title and content both empty is the
// silent guard.
func AddNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addNoteRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.AddNote(req.Title, req.Content, req.HideOnStream)
		writeJSON(w, http.StatusOK, d.Store.Notes())
	}
}

// UpdateNote merges the provided fields into a note.
func UpdateNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateNoteRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.UpdateNote(chi.URLParam(r, "id"), dashboard.NoteUpdate{
			Title:        req.Title,
			Content:      req.Content,
			HideOnStream: req.HideOnStream,
		})
		writeJSON(w, http.StatusOK, d.Store.Notes())
	}
}

// RemoveNote deletes a note (idempotent).
func RemoveNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.RemoveNote(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, d.Store.Notes())
	}
}

// TogglePinNote flips a note's pinned flag.
func TogglePinNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.TogglePinNote(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, d.Store.Notes())
	}
}

// ToggleNoteHide flips a note's hide-on-stream flag.
func ToggleNoteHide(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ToggleNoteHide(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, d.Store.Notes())
	}
}

// ReorderNotes applies the drop order computed by the view layer.
func ReorderNotes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.ReorderNotes(req.IDs)
		writeJSON(w, http.StatusOK, d.Store.Notes())
	}
}
