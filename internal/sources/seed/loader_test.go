package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ymatsumoto/startpage/internal/domain"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestLoadWithoutFile(t *testing.T) {
	state, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state.Categories[0].ID != domain.DefaultCategoryID {
		t.Error("defaults missing the reserved category")
	}
	if len(state.QuickPages) == 0 || state.Theme != "dark" {
		t.Errorf("unexpected defaults: %+v", state)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	state, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(state.QuickPages) == 0 {
		t.Error("defaults not returned for a missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeSeedFile(t, "quickPages: [not: valid: yaml")
	if _, err := NewLoader(path).Load(); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestLoadReplacesSectionsPresentInFile(t *testing.T) {
	path := writeSeedFile(t, `
theme: light
weatherLocation: 大阪
categories:
  - name: Work
quickPages:
  - name: Wiki
    url: https://wiki.example
    category: Work
  - name: NoURL
`)

	state, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if state.Theme != "light" || state.WeatherLocation != "大阪" {
		t.Errorf("scalars not applied: theme=%q location=%q", state.Theme, state.WeatherLocation)
	}

	// Reserved category always stays first.
	if state.Categories[0].ID != domain.DefaultCategoryID {
		t.Error("reserved category not first")
	}
	if len(state.Categories) != 2 || state.Categories[1].Name != "Work" {
		t.Errorf("categories = %+v", state.Categories)
	}

	// Invalid entries are skipped, valid ones resolve their category.
	if len(state.QuickPages) != 1 {
		t.Fatalf("quick pages = %+v", state.QuickPages)
	}
	if state.QuickPages[0].CategoryID != state.Categories[1].ID {
		t.Errorf("page category = %q, want %q", state.QuickPages[0].CategoryID, state.Categories[1].ID)
	}

	// Sections absent from the file keep the built-in entries.
	if len(state.Reminders) == 0 || len(state.MailServices) == 0 {
		t.Error("absent sections lost their defaults")
	}
}

func TestLoadDropsInvalidReminderTimes(t *testing.T) {
	path := writeSeedFile(t, `
reminders:
  - text: standup
    time: "09:30"
  - text: fuzzy
    time: sometime
`)

	state, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(state.Reminders) != 2 {
		t.Fatalf("reminders = %+v", state.Reminders)
	}
	if state.Reminders[0].Time != "09:30" {
		t.Errorf("valid time lost: %q", state.Reminders[0].Time)
	}
	if state.Reminders[1].Time != "" {
		t.Errorf("invalid time kept: %q", state.Reminders[1].Time)
	}
}
