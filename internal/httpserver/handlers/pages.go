package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
)

type addPageRequest struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	HideOnStream bool   `json:"hideOnStream"`
	CategoryID   string `json:"categoryId"`
}

type updatePageRequest struct {
	Name         *string `json:"name"`
	URL          *string `json:"url"`
	HideOnStream *bool   `json:"hideOnStream"`
	CategoryID   *string `json:"categoryId"`
}

type reorderRequest struct {
	IDs []string `json:"ids"`
}

// AddPage appends a quick page. An empty name or url is the silent guard:
// the store ignores the add and the unchanged collection comes back.
func AddPage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addPageRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.AddQuickPage(req.Name, req.URL, req.HideOnStream, req.CategoryID)
		writeJSON(w, http.StatusOK, d.Store.QuickPages())
	}
}

// UpdatePage merges the provided fields into a quick page.
func UpdatePage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePageRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.UpdateQuickPage(chi.URLParam(r, "id"), dashboard.QuickPageUpdate{
			Name:         req.Name,
			URL:          req.URL,
			HideOnStream: req.HideOnStream,
			CategoryID:   req.CategoryID,
		})
		writeJSON(w, http.StatusOK, d.Store.QuickPages())
	}
}

// RemovePage deletes a quick page (idempotent).
func RemovePage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.RemoveQuickPage(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, d.Store.QuickPages())
	}
}

// TogglePageHide flips a quick page's hide-on-stream flag.
func TogglePageHide(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ToggleQuickPageHide(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, d.Store.QuickPages())
	}
}

// ReorderPages applies the drop order computed by the view layer.
func ReorderPages(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.ReorderQuickPages(req.IDs)
		writeJSON(w, http.StatusOK, d.Store.QuickPages())
	}
}
