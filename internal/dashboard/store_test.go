package dashboard

import (
	"sync"
	"testing"
	"time"

	"github.com/ymatsumoto/startpage/internal/domain"
	"github.com/ymatsumoto/startpage/internal/logger"
)

func newHydratedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(logger.New("error", false), nil)
	s.Hydrate(State{
		Categories: []domain.Category{
			{ID: domain.DefaultCategoryID, Name: "すべて"},
			{ID: "work", Name: "Work"},
		},
		ActiveCategory: domain.DefaultCategoryID,
		QuickPages: []domain.QuickPage{
			{ID: "p1", Name: "Google", URL: "https://www.google.com", CategoryID: domain.DefaultCategoryID},
			{ID: "p2", Name: "GitHub", URL: "https://github.com", CategoryID: "work"},
		},
		Reminders: []domain.Reminder{
			{ID: "r1", Text: "standup", Time: "09:30"},
		},
		MailServices: []domain.MailService{
			{ID: "m1", Name: "Gmail", URL: "https://mail.google.com"},
		},
		Notes: []domain.Note{
			{ID: "n1", Title: "memo", Content: "hello", Color: domain.NotePalette[0]},
		},
		Theme:           "dark",
		WeatherLocation: "東京",
	})
	return s
}

func TestMutationRefusedBeforeHydration(t *testing.T) {
	s := NewStore(logger.New("error", false), nil)

	s.AddQuickPage("Google", "https://www.google.com", false, domain.DefaultCategoryID)
	if got := len(s.QuickPages()); got != 0 {
		t.Fatalf("expected no pages before hydration, got %d", got)
	}
	if s.Hydrated() {
		t.Error("store reported hydrated before Hydrate")
	}
}

func TestHydrateNormalizesDanglingReferences(t *testing.T) {
	s := NewStore(logger.New("error", false), nil)
	s.Hydrate(State{
		Categories: []domain.Category{{ID: "work", Name: "Work"}},
		QuickPages: []domain.QuickPage{
			{ID: "p1", Name: "A", URL: "https://a.example", CategoryID: "gone"},
		},
		ActiveCategory: "also-gone",
	})

	cats := s.Categories()
	if cats[0].ID != domain.DefaultCategoryID {
		t.Errorf("default category not prepended, first is %q", cats[0].ID)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}
	if got := s.QuickPages()[0].CategoryID; got != domain.DefaultCategoryID {
		t.Errorf("dangling page category = %q, want default", got)
	}
	if got := s.ActiveCategory(); got != domain.DefaultCategoryID {
		t.Errorf("dangling active category = %q, want default", got)
	}
}

func TestHydrateDropsDuplicateCategories(t *testing.T) {
	s := NewStore(logger.New("error", false), nil)
	s.Hydrate(State{
		Categories: []domain.Category{
			{ID: domain.DefaultCategoryID, Name: "すべて"},
			{ID: "work", Name: "Work"},
			{ID: "work", Name: "Work again"},
		},
	})

	if got := len(s.Categories()); got != 2 {
		t.Fatalf("expected duplicates dropped, got %d categories", got)
	}
}

func TestPersistHookReceivesSnapshot(t *testing.T) {
	var saved []State
	s := NewStore(logger.New("error", false), func(st State) {
		saved = append(saved, st)
	})
	s.Hydrate(State{})

	if len(saved) != 0 {
		t.Fatalf("Hydrate must not persist, got %d writes", len(saved))
	}

	s.AddReminder("standup", "09:30", false)
	if len(saved) != 1 {
		t.Fatalf("expected 1 persist write, got %d", len(saved))
	}
	if len(saved[0].Reminders) != 1 || saved[0].Reminders[0].Text != "standup" {
		t.Errorf("snapshot missing the mutation: %+v", saved[0].Reminders)
	}

	// Guarded no-op must not persist.
	s.AddReminder("", "", false)
	s.RemoveReminder("no-such-id")
	if len(saved) != 1 {
		t.Errorf("no-op mutations persisted, got %d writes", len(saved))
	}
}

func TestPersistWritesKeepMutationOrder(t *testing.T) {
	var mu sync.Mutex
	var snapshots []State
	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	calls := 0

	s := NewStore(logger.New("error", false), func(st State) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			close(firstEntered)
			<-releaseFirst
		}
		mu.Lock()
		snapshots = append(snapshots, st)
		mu.Unlock()
	})
	s.Hydrate(State{})

	done1 := make(chan struct{})
	go func() {
		defer close(done1)
		s.AddReminder("first", "", false)
	}()
	<-firstEntered

	// A second mutation lands in the store while the first write-through
	// is still in flight. Its snapshot must not reach the kv store ahead
	// of the first one.
	done2 := make(chan struct{})
	go func() {
		defer close(done2)
		s.AddReminder("second", "", false)
	}()

	select {
	case <-done2:
		t.Fatal("second write-through completed while the first was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(releaseFirst)
	<-done1
	<-done2

	mu.Lock()
	defer mu.Unlock()
	if len(snapshots) != 2 {
		t.Fatalf("expected 2 persist writes, got %d", len(snapshots))
	}
	last := snapshots[len(snapshots)-1]
	if len(last.Reminders) != 2 {
		t.Fatalf("last persisted snapshot has %d reminders, want 2", len(last.Reminders))
	}
	if last.Reminders[1].Text != "second" {
		t.Errorf("durable mirror lost the newer mutation: %+v", last.Reminders)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newHydratedStore(t)

	snap := s.Snapshot()
	snap.QuickPages[0].Name = "mutated"

	if got := s.QuickPages()[0].Name; got != "Google" {
		t.Errorf("snapshot mutation leaked into store: %q", got)
	}
}

func TestReorderByIDIsAPermutation(t *testing.T) {
	items := []domain.Category{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{"full reorder", []string{"c", "a", "b"}, []string{"c", "a", "b"}},
		{"unknown ids skipped", []string{"x", "b"}, []string{"b", "a", "c"}},
		{"missing ids appended in order", []string{"c"}, []string{"c", "a", "b"}},
		{"duplicate ids collapse", []string{"b", "b", "a"}, []string{"b", "a", "c"}},
		{"empty ids keep order", nil, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := reorderByID(items, tt.ids, func(c domain.Category) string { return c.ID })
			if len(out) != len(items) {
				t.Fatalf("not a permutation: %d elements, want %d", len(out), len(items))
			}
			for i, want := range tt.want {
				if out[i].ID != want {
					t.Errorf("position %d = %q, want %q", i, out[i].ID, want)
				}
			}
		})
	}
}
