package dashboard

import "github.com/ymatsumoto/startpage/internal/domain"

// MailServices returns a copy of the mail shortcut collection.
func (s *Store) MailServices() []domain.MailService {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.MailService(nil), s.state.MailServices...)
}

// AddMailService appends a mail shortcut. Empty name or url is a silent
// guard.
func (s *Store) AddMailService(name, url string) {
	if name == "" || url == "" {
		return
	}
	s.mutate(func(st *State) bool {
		st.MailServices = append(st.MailServices, domain.MailService{
			ID:   domain.NewID(),
			Name: name,
			URL:  url,
		})
		return true
	})
}

// RemoveMailService deletes the matching mail shortcut. Unknown ids are a
// no-op.
func (s *Store) RemoveMailService(id string) {
	s.mutate(func(st *State) bool {
		for i, m := range st.MailServices {
			if m.ID == id {
				st.MailServices = append(st.MailServices[:i], st.MailServices[i+1:]...)
				return true
			}
		}
		return false
	})
}
