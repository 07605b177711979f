package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
)

type renameCategoryRequest struct {
	Name string `json:"name"`
}

type activeCategoryRequest struct {
	ID string `json:"id"`
}

// AddCategory creates a category with a placeholder name and makes it the
// active selection. The new category is returned so the view can start an
// inline rename.
func AddCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := d.Store.AddCategory()
		writeJSON(w, http.StatusCreated, cat)
	}
}

// RenameCategory renames a category. The default category silently keeps
// its name.
func RenameCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req renameCategoryRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.RenameCategory(chi.URLParam(r, "id"), req.Name)
		writeJSON(w, http.StatusOK, d.Store.Categories())
	}
}

// RemoveCategory deletes a category; its quick pages move to the default
// category. The default category itself cannot be removed.
func RemoveCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.RemoveCategory(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, d.Store.Categories())
	}
}

// ReorderCategories applies the drop order computed by the view layer.
func ReorderCategories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.ReorderCategories(req.IDs)
		writeJSON(w, http.StatusOK, d.Store.Categories())
	}
}

// SetActiveCategory switches the active selection.
func SetActiveCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req activeCategoryRequest
		if !decodeBody(w, r, &req) {
			return
		}
		d.Store.SetActiveCategory(req.ID)
		writeJSON(w, http.StatusOK, map[string]string{"activeCategory": d.Store.ActiveCategory()})
	}
}
