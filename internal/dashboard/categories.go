package dashboard

import "github.com/ymatsumoto/startpage/internal/domain"

func categoryExists(st *State, id string) bool {
	for _, c := range st.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Categories returns a copy of the category collection in display order.
func (s *Store) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Category(nil), s.state.Categories...)
}

// ActiveCategory returns the id of the currently selected category.
func (s *Store) ActiveCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveCategory
}

// AddCategory appends a category with a placeholder name (the user renames
// it right away) and makes it the active selection. The new category is
// returned so the view can focus its name field.
func (s *Store) AddCategory() domain.Category {
	cat := domain.Category{ID: domain.NewID(), Name: CategoryPlaceholderName}
	s.mutate(func(st *State) bool {
		st.Categories = append(st.Categories, cat)
		st.ActiveCategory = cat.ID
		return true
	})
	return cat
}

// RenameCategory sets a new name on the matching category. The default
// category is immune and the request is silently refused, as is an empty
// name.
func (s *Store) RenameCategory(id, name string) {
	if id == domain.DefaultCategoryID || name == "" {
		return
	}
	s.mutate(func(st *State) bool {
		for i := range st.Categories {
			if st.Categories[i].ID == id {
				st.Categories[i].Name = name
				return true
			}
		}
		return false
	})
}

// RemoveCategory deletes the matching category and retargets every quick
// page it owned to the default category. If the removed category was the
// active selection, the selection falls back to default. Removing the
// default category is silently refused.
func (s *Store) RemoveCategory(id string) {
	if id == domain.DefaultCategoryID {
		return
	}
	s.mutate(func(st *State) bool {
		found := false
		for i, c := range st.Categories {
			if c.ID == id {
				st.Categories = append(st.Categories[:i], st.Categories[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return false
		}
		for i := range st.QuickPages {
			if st.QuickPages[i].CategoryID == id {
				st.QuickPages[i].CategoryID = domain.DefaultCategoryID
			}
		}
		if st.ActiveCategory == id {
			st.ActiveCategory = domain.DefaultCategoryID
		}
		return true
	})
}

// ReorderCategories replaces the category order with the permutation
// implied by ids.
func (s *Store) ReorderCategories(ids []string) {
	s.mutate(func(st *State) bool {
		st.Categories = reorderByID(st.Categories, ids, func(c domain.Category) string { return c.ID })
		return true
	})
}

// SetActiveCategory switches the active selection. Unknown ids are refused
// so the selection can never dangle.
func (s *Store) SetActiveCategory(id string) {
	s.mutate(func(st *State) bool {
		if !categoryExists(st, id) {
			return false
		}
		st.ActiveCategory = id
		return true
	})
}
