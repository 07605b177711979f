package dashboard

import "github.com/ymatsumoto/startpage/internal/domain"

// NoteUpdate carries the fields to merge into an existing note.
type NoteUpdate struct {
	Title        *string
	Content      *string
	HideOnStream *bool
}

// Notes returns a copy of the note collection in display order.
func (s *Store) Notes() []domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Note(nil), s.state.Notes...)
}

// AddNote appends a sticky note with a random palette color. At least one
// of title or content must be non-empty, otherwise the add is a silent
// guard.
func (s *Store) AddNote(title, content string, hideOnStream bool) {
	if title == "" && content == "" {
		return
	}
	s.mutate(func(st *State) bool {
		st.Notes = append(st.Notes, domain.Note{
			ID:           domain.NewID(),
			Title:        title,
			Content:      content,
			Color:        s.pickColor(),
			HideOnStream: hideOnStream,
		})
		return true
	})
}

// RemoveNote deletes the matching note. Unknown ids are a no-op.
func (s *Store) RemoveNote(id string) {
	s.mutate(func(st *State) bool {
		for i, n := range st.Notes {
			if n.ID == id {
				st.Notes = append(st.Notes[:i], st.Notes[i+1:]...)
				return true
			}
		}
		return false
	})
}

// UpdateNote merges the provided fields into the matching note. Title and
// content may be set to empty as long as the other stays non-empty.
func (s *Store) UpdateNote(id string, upd NoteUpdate) {
	s.mutate(func(st *State) bool {
		for i := range st.Notes {
			if st.Notes[i].ID != id {
				continue
			}
			n := st.Notes[i]
			if upd.Title != nil {
				n.Title = *upd.Title
			}
			if upd.Content != nil {
				n.Content = *upd.Content
			}
			if upd.HideOnStream != nil {
				n.HideOnStream = *upd.HideOnStream
			}
			if n.Title == "" && n.Content == "" {
				return false
			}
			st.Notes[i] = n
			return true
		}
		return false
	})
}

// TogglePinNote flips the pinned flag of the matching note.
func (s *Store) TogglePinNote(id string) {
	s.mutate(func(st *State) bool {
		for i := range st.Notes {
			if st.Notes[i].ID == id {
				st.Notes[i].Pinned = !st.Notes[i].Pinned
				return true
			}
		}
		return false
	})
}

// ToggleNoteHide flips the hide-on-stream flag of the matching note.
func (s *Store) ToggleNoteHide(id string) {
	s.mutate(func(st *State) bool {
		for i := range st.Notes {
			if st.Notes[i].ID == id {
				st.Notes[i].HideOnStream = !st.Notes[i].HideOnStream
				return true
			}
		}
		return false
	})
}

// ReorderNotes replaces the note order with the permutation implied by ids.
func (s *Store) ReorderNotes(ids []string) {
	s.mutate(func(st *State) bool {
		st.Notes = reorderByID(st.Notes, ids, func(n domain.Note) string { return n.ID })
		return true
	})
}
