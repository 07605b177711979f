package integration

import (
	"context"
	"testing"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/domain"
	"github.com/ymatsumoto/startpage/internal/kv"
	"github.com/ymatsumoto/startpage/internal/logger"
	"github.com/ymatsumoto/startpage/internal/persist"
	"github.com/ymatsumoto/startpage/internal/sources/seed"
)

// boot assembles the persistence stack the way the app does: seed
// defaults, a file-backed store and a hydrated dashboard store that
// writes through on every mutation.
func boot(t *testing.T, dataDir string) *dashboard.Store {
	t.Helper()
	log := logger.New("error", false)

	adapter := persist.NewAdapter(kv.NewDiskStore(dataDir), log)

	seedState, err := seed.NewLoader("").Load()
	if err != nil {
		t.Fatalf("seed load failed: %v", err)
	}

	store := dashboard.NewStore(log, func(state dashboard.State) {
		adapter.Save(context.Background(), state)
	})
	store.Hydrate(adapter.Load(context.Background(), seedState))
	return store
}

// TestStateSurvivesRestart drives a typical editing session, then boots a
// second store over the same data directory and checks every mutation is
// still there.
func TestStateSurvivesRestart(t *testing.T) {
	dataDir := t.TempDir()

	store := boot(t, dataDir)

	// First boot starts from the built-in samples.
	if len(store.QuickPages()) != 3 {
		t.Fatalf("expected 3 seeded pages, got %d", len(store.QuickPages()))
	}

	cat := store.AddCategory()
	store.RenameCategory(cat.ID, "Work")
	store.AddQuickPage("Wiki", "https://wiki.example", true, cat.ID)
	store.AddReminder("standup", "09:30", false)
	store.AddNote("memo", "remember the milk", false)
	store.AddMailService("Fastmail", "https://fastmail.example")
	store.SetTheme("light")
	store.SetStreaming(true)
	store.SetWeatherLocation("大阪")

	restarted := boot(t, dataDir)

	cats := restarted.Categories()
	if len(cats) != 2 || cats[1].Name != "Work" {
		t.Errorf("categories after restart: %+v", cats)
	}
	pages := restarted.QuickPages()
	if len(pages) != 4 {
		t.Fatalf("expected 4 pages after restart, got %d", len(pages))
	}
	added := pages[3]
	if added.Name != "Wiki" || !added.HideOnStream || added.CategoryID != cat.ID {
		t.Errorf("added page lost detail: %+v", added)
	}
	reminders := restarted.Reminders()
	if len(reminders) != 3 || reminders[2].Text != "standup" || reminders[2].Time != "09:30" {
		t.Errorf("reminders after restart: %+v", reminders)
	}
	notes := restarted.Notes()
	if len(notes) != 1 || notes[0].Content != "remember the milk" || notes[0].Color == "" {
		t.Errorf("notes after restart: %+v", notes)
	}
	mail := restarted.MailServices()
	if len(mail) != 2 || mail[1].Name != "Fastmail" {
		t.Errorf("mail services after restart: %+v", mail)
	}
	if restarted.Theme() != "light" {
		t.Errorf("theme after restart: %q", restarted.Theme())
	}
	if !restarted.Streaming() {
		t.Error("streaming flag lost")
	}
	if restarted.WeatherLocation() != "大阪" {
		t.Errorf("weather location after restart: %q", restarted.WeatherLocation())
	}
	if restarted.ActiveCategory() != cat.ID {
		t.Errorf("active category after restart: %q, want %q", restarted.ActiveCategory(), cat.ID)
	}
}

// TestRemovalsSurviveRestart checks deletes and cascades persist too.
func TestRemovalsSurviveRestart(t *testing.T) {
	dataDir := t.TempDir()

	store := boot(t, dataDir)
	cat := store.AddCategory()
	store.AddQuickPage("Wiki", "https://wiki.example", false, cat.ID)
	store.RemoveCategory(cat.ID)

	restarted := boot(t, dataDir)

	if len(restarted.Categories()) != 1 {
		t.Errorf("categories after restart: %+v", restarted.Categories())
	}
	pages := restarted.QuickPages()
	last := pages[len(pages)-1]
	if last.Name != "Wiki" || last.CategoryID != domain.DefaultCategoryID {
		t.Errorf("cascaded page after restart: %+v", last)
	}
	if restarted.ActiveCategory() != domain.DefaultCategoryID {
		t.Errorf("active category after restart: %q", restarted.ActiveCategory())
	}
}
