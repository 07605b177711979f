// Package seed builds the state a fresh installation starts from, before
// any persisted keys exist.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/domain"
)

// Defaults returns the built-in first-run state: the reserved category,
// a handful of sample quick pages and reminders, a Gmail shortcut, dark
// theme and Tokyo as the weather location.
func Defaults() dashboard.State {
	return dashboard.State{
		Categories: []domain.Category{
			{ID: domain.DefaultCategoryID, Name: "すべて"},
		},
		ActiveCategory: domain.DefaultCategoryID,
		QuickPages: []domain.QuickPage{
			{ID: "1", Name: "Google", URL: "https://www.google.com", CategoryID: domain.DefaultCategoryID},
			{ID: "2", Name: "GitHub", URL: "https://github.com", CategoryID: domain.DefaultCategoryID},
			{ID: "3", Name: "YouTube", URL: "https://www.youtube.com", CategoryID: domain.DefaultCategoryID},
		},
		Reminders: []domain.Reminder{
			{ID: "1", Text: "会議に参加する", Time: "14:00"},
			{ID: "2", Text: "プロジェクト資料を準備"},
		},
		MailServices: []domain.MailService{
			{ID: "1", Name: "Gmail", URL: "https://mail.google.com"},
		},
		Theme:           "dark",
		WeatherLocation: "東京",
	}
}

// Loader reads an optional seed YAML file.
type Loader struct {
	filePath string
}

// NewLoader creates a seed loader for filePath. An empty path means the
// built-in defaults are used as-is.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load returns the first-run state. When the seed file is configured it
// replaces the built-in samples section by section: a section present in
// the file wins, an absent section keeps the built-in entries. A missing
// file is not an error; a malformed file is.
func (l *Loader) Load() (dashboard.State, error) {
	state := Defaults()
	if l.filePath == "" {
		return state, nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return state, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	apply(&state, f)
	return state, nil
}

func apply(state *dashboard.State, f File) {
	if f.Theme == "light" || f.Theme == "dark" {
		state.Theme = f.Theme
	}
	if f.WeatherLocation != "" {
		state.WeatherLocation = f.WeatherLocation
	}

	if len(f.Categories) > 0 {
		cats := []domain.Category{{ID: domain.DefaultCategoryID, Name: "すべて"}}
		for _, c := range f.Categories {
			if c.Name == "" {
				continue
			}
			cats = append(cats, domain.Category{ID: domain.NewID(), Name: c.Name})
		}
		state.Categories = cats
	}

	if len(f.QuickPages) > 0 {
		byName := make(map[string]string, len(state.Categories))
		for _, c := range state.Categories {
			byName[c.Name] = c.ID
		}
		pages := make([]domain.QuickPage, 0, len(f.QuickPages))
		for _, p := range f.QuickPages {
			if p.Name == "" || p.URL == "" {
				continue
			}
			catID := domain.DefaultCategoryID
			if id, ok := byName[p.Category]; ok {
				catID = id
			}
			pages = append(pages, domain.QuickPage{
				ID:           domain.NewID(),
				Name:         p.Name,
				URL:          p.URL,
				HideOnStream: p.HideOnStream,
				CategoryID:   catID,
			})
		}
		state.QuickPages = pages
	}

	if len(f.Reminders) > 0 {
		reminders := make([]domain.Reminder, 0, len(f.Reminders))
		for _, r := range f.Reminders {
			if r.Text == "" {
				continue
			}
			due := r.Time
			if due != "" && !domain.ValidClockTime(due) {
				due = ""
			}
			reminders = append(reminders, domain.Reminder{
				ID:           domain.NewID(),
				Text:         r.Text,
				Time:         due,
				HideOnStream: r.HideOnStream,
			})
		}
		state.Reminders = reminders
	}

	if len(f.MailServices) > 0 {
		mail := make([]domain.MailService, 0, len(f.MailServices))
		for _, m := range f.MailServices {
			if m.Name == "" || m.URL == "" {
				continue
			}
			mail = append(mail, domain.MailService{ID: domain.NewID(), Name: m.Name, URL: m.URL})
		}
		state.MailServices = mail
	}
}
