package dashboard

import "github.com/ymatsumoto/startpage/internal/domain"

// ReminderUpdate carries the fields to merge into an existing reminder.
type ReminderUpdate struct {
	Text         *string
	Time         *string
	HideOnStream *bool
}

// Reminders returns a copy of the reminder collection in display order.
func (s *Store) Reminders() []domain.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Reminder(nil), s.state.Reminders...)
}

// AddReminder appends a new reminder. Empty text is a silent guard. A due
// time that does not match "HH:MM" is dropped rather than stored.
func (s *Store) AddReminder(text, dueTime string, hideOnStream bool) {
	if text == "" {
		return
	}
	if dueTime != "" && !domain.ValidClockTime(dueTime) {
		dueTime = ""
	}
	s.mutate(func(st *State) bool {
		st.Reminders = append(st.Reminders, domain.Reminder{
			ID:           domain.NewID(),
			Text:         text,
			Time:         dueTime,
			HideOnStream: hideOnStream,
		})
		return true
	})
}

// ToggleReminder flips the completed flag of the matching reminder.
func (s *Store) ToggleReminder(id string) {
	s.mutate(func(st *State) bool {
		for i := range st.Reminders {
			if st.Reminders[i].ID == id {
				st.Reminders[i].Completed = !st.Reminders[i].Completed
				return true
			}
		}
		return false
	})
}

// ToggleReminderHide flips the hide-on-stream flag of the matching reminder.
func (s *Store) ToggleReminderHide(id string) {
	s.mutate(func(st *State) bool {
		for i := range st.Reminders {
			if st.Reminders[i].ID == id {
				st.Reminders[i].HideOnStream = !st.Reminders[i].HideOnStream
				return true
			}
		}
		return false
	})
}

// UpdateReminder merges the provided fields into the matching reminder.
func (s *Store) UpdateReminder(id string, upd ReminderUpdate) {
	s.mutate(func(st *State) bool {
		for i := range st.Reminders {
			if st.Reminders[i].ID != id {
				continue
			}
			r := &st.Reminders[i]
			if upd.Text != nil && *upd.Text != "" {
				r.Text = *upd.Text
			}
			if upd.Time != nil {
				t := *upd.Time
				if t == "" || domain.ValidClockTime(t) {
					r.Time = t
				}
			}
			if upd.HideOnStream != nil {
				r.HideOnStream = *upd.HideOnStream
			}
			return true
		}
		return false
	})
}

// RemoveReminder deletes the matching reminder and forgets its
// notified marker, so a recreated reminder with the same time can fire
// again.
func (s *Store) RemoveReminder(id string) {
	s.mutate(func(st *State) bool {
		delete(s.notified, id)
		for i, r := range st.Reminders {
			if r.ID == id {
				st.Reminders = append(st.Reminders[:i], st.Reminders[i+1:]...)
				return true
			}
		}
		return false
	})
}

// ReorderReminders replaces the reminder order with the permutation implied
// by ids.
func (s *Store) ReorderReminders(ids []string) {
	s.mutate(func(st *State) bool {
		st.Reminders = reorderByID(st.Reminders, ids, func(r domain.Reminder) string { return r.ID })
		return true
	})
}

// MarkNotified records that a notification fired for the reminder id.
// It returns false when the id was already marked, which is the dedup
// guard against double-firing within the same matching minute.
func (s *Store) MarkNotified(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notified[id]; ok {
		return false
	}
	s.notified[id] = struct{}{}
	return true
}

// Notified reports whether the reminder id already fired a notification
// in this process.
func (s *Store) Notified(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.notified[id]
	return ok
}
