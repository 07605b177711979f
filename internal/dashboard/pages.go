package dashboard

import "github.com/ymatsumoto/startpage/internal/domain"

// QuickPageUpdate carries the fields to merge into an existing quick page.
// Nil fields are left untouched.
type QuickPageUpdate struct {
	Name         *string
	URL          *string
	HideOnStream *bool
	CategoryID   *string
}

// QuickPages returns a copy of the quick page collection in display order.
func (s *Store) QuickPages() []domain.QuickPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.QuickPage(nil), s.state.QuickPages...)
}

// AddQuickPage appends a new quick page. Empty name or url is a silent
// guard: nothing is added and nothing is persisted. An unknown category id
// is normalized to the default category.
func (s *Store) AddQuickPage(name, url string, hideOnStream bool, categoryID string) {
	if name == "" || url == "" {
		return
	}
	s.mutate(func(st *State) bool {
		if !categoryExists(st, categoryID) {
			categoryID = domain.DefaultCategoryID
		}
		st.QuickPages = append(st.QuickPages, domain.QuickPage{
			ID:           domain.NewID(),
			Name:         name,
			URL:          url,
			HideOnStream: hideOnStream,
			CategoryID:   categoryID,
		})
		return true
	})
}

// RemoveQuickPage deletes the page with the given id. Unknown ids are a
// no-op.
func (s *Store) RemoveQuickPage(id string) {
	s.mutate(func(st *State) bool {
		for i, p := range st.QuickPages {
			if p.ID == id {
				st.QuickPages = append(st.QuickPages[:i], st.QuickPages[i+1:]...)
				return true
			}
		}
		return false
	})
}

// UpdateQuickPage merges the provided fields into the matching page.
func (s *Store) UpdateQuickPage(id string, upd QuickPageUpdate) {
	s.mutate(func(st *State) bool {
		for i := range st.QuickPages {
			if st.QuickPages[i].ID != id {
				continue
			}
			p := &st.QuickPages[i]
			if upd.Name != nil && *upd.Name != "" {
				p.Name = *upd.Name
			}
			if upd.URL != nil && *upd.URL != "" {
				p.URL = *upd.URL
			}
			if upd.HideOnStream != nil {
				p.HideOnStream = *upd.HideOnStream
			}
			if upd.CategoryID != nil {
				cid := *upd.CategoryID
				if !categoryExists(st, cid) {
					cid = domain.DefaultCategoryID
				}
				p.CategoryID = cid
			}
			return true
		}
		return false
	})
}

// ToggleQuickPageHide flips the hide-on-stream flag of the matching page.
func (s *Store) ToggleQuickPageHide(id string) {
	s.mutate(func(st *State) bool {
		for i := range st.QuickPages {
			if st.QuickPages[i].ID == id {
				st.QuickPages[i].HideOnStream = !st.QuickPages[i].HideOnStream
				return true
			}
		}
		return false
	})
}

// ReorderQuickPages replaces the collection order with the permutation
// implied by ids (drag-and-drop resolution happens in the view layer).
func (s *Store) ReorderQuickPages(ids []string) {
	s.mutate(func(st *State) bool {
		st.QuickPages = reorderByID(st.QuickPages, ids, func(p domain.QuickPage) string { return p.ID })
		return true
	})
}
