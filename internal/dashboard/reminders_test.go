package dashboard

import (
	"testing"
)

func TestAddReminder(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		dueTime  string
		added    bool
		wantTime string
	}{
		{"with valid time", "meeting", "14:00", true, "14:00"},
		{"without time", "groceries", "", true, ""},
		{"invalid time dropped", "call", "25:99", true, ""},
		{"non-clock garbage dropped", "call", "soon", true, ""},
		{"empty text refused", "", "14:00", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newHydratedStore(t)
			before := len(s.Reminders())

			s.AddReminder(tt.text, tt.dueTime, false)

			reminders := s.Reminders()
			if !tt.added {
				if len(reminders) != before {
					t.Fatalf("guarded add changed the collection")
				}
				return
			}
			if len(reminders) != before+1 {
				t.Fatalf("expected %d reminders, got %d", before+1, len(reminders))
			}
			got := reminders[len(reminders)-1]
			if got.Text != tt.text || got.Time != tt.wantTime {
				t.Errorf("got %+v, want text=%q time=%q", got, tt.text, tt.wantTime)
			}
			if got.Completed {
				t.Error("new reminder starts completed")
			}
		})
	}
}

func TestToggleReminder(t *testing.T) {
	s := newHydratedStore(t)

	s.ToggleReminder("r1")
	if !s.Reminders()[0].Completed {
		t.Error("toggle did not complete the reminder")
	}
	s.ToggleReminder("r1")
	if s.Reminders()[0].Completed {
		t.Error("double toggle left the reminder completed")
	}
}

func TestUpdateReminderInvalidTimeIgnored(t *testing.T) {
	s := newHydratedStore(t)

	bad := "9:3"
	s.UpdateReminder("r1", ReminderUpdate{Time: &bad})
	if got := s.Reminders()[0].Time; got != "09:30" {
		t.Errorf("invalid time overwrote: %q", got)
	}

	// Clearing the time is allowed.
	empty := ""
	s.UpdateReminder("r1", ReminderUpdate{Time: &empty})
	if got := s.Reminders()[0].Time; got != "" {
		t.Errorf("time not cleared: %q", got)
	}
}

func TestMarkNotifiedDedups(t *testing.T) {
	s := newHydratedStore(t)

	if !s.MarkNotified("r1") {
		t.Fatal("first mark refused")
	}
	if s.MarkNotified("r1") {
		t.Error("second mark accepted, dedup broken")
	}
	if !s.Notified("r1") {
		t.Error("Notified does not report the mark")
	}
}

func TestRemoveReminderForgetsNotifiedMark(t *testing.T) {
	s := newHydratedStore(t)

	s.MarkNotified("r1")
	s.RemoveReminder("r1")

	if s.Notified("r1") {
		t.Error("notified mark survived removal")
	}
	if got := len(s.Reminders()); got != 0 {
		t.Errorf("%d reminders left after remove", got)
	}
}
