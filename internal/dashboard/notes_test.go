package dashboard

import (
	"slices"
	"testing"

	"github.com/ymatsumoto/startpage/internal/domain"
)

func TestAddNote(t *testing.T) {
	s := newHydratedStore(t)

	s.AddNote("shopping", "milk, eggs", false)

	notes := s.Notes()
	added := notes[len(notes)-1]
	if added.Title != "shopping" || added.Content != "milk, eggs" {
		t.Errorf("unexpected note: %+v", added)
	}
	if !slices.Contains(domain.NotePalette, added.Color) {
		t.Errorf("color %q not from the palette", added.Color)
	}
	if added.Pinned {
		t.Error("new note starts pinned")
	}
}

func TestAddNoteNeedsTitleOrContent(t *testing.T) {
	s := newHydratedStore(t)
	before := len(s.Notes())

	s.AddNote("", "", false)
	if got := len(s.Notes()); got != before {
		t.Fatal("empty note added")
	}

	s.AddNote("title only", "", false)
	s.AddNote("", "content only", false)
	if got := len(s.Notes()); got != before+2 {
		t.Errorf("expected %d notes, got %d", before+2, got)
	}
}

func TestUpdateNoteRefusesEmptyingBoth(t *testing.T) {
	s := newHydratedStore(t)

	empty := ""
	s.UpdateNote("n1", NoteUpdate{Title: &empty, Content: &empty})

	n := s.Notes()[0]
	if n.Title != "memo" || n.Content != "hello" {
		t.Errorf("note was emptied: %+v", n)
	}

	// Emptying one side while the other stays is fine.
	s.UpdateNote("n1", NoteUpdate{Title: &empty})
	n = s.Notes()[0]
	if n.Title != "" || n.Content != "hello" {
		t.Errorf("partial empty not applied: %+v", n)
	}
}

func TestUpdateNoteKeepsColor(t *testing.T) {
	s := newHydratedStore(t)

	title := "renamed"
	s.UpdateNote("n1", NoteUpdate{Title: &title})
	if got := s.Notes()[0].Color; got != domain.NotePalette[0] {
		t.Errorf("color changed on update: %q", got)
	}
}

func TestTogglePinNote(t *testing.T) {
	s := newHydratedStore(t)

	s.TogglePinNote("n1")
	if !s.Notes()[0].Pinned {
		t.Error("pin not set")
	}
	s.TogglePinNote("n1")
	if s.Notes()[0].Pinned {
		t.Error("double toggle left the note pinned")
	}
}

func TestRemoveNote(t *testing.T) {
	s := newHydratedStore(t)

	s.RemoveNote("n1")
	if got := len(s.Notes()); got != 0 {
		t.Errorf("%d notes left after remove", got)
	}
}
