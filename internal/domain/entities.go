package domain

// DefaultCategoryID is the reserved category every installation carries.
// It always exists, cannot be renamed or deleted, and adopts the quick
// pages of any category that gets removed.
const DefaultCategoryID = "default"

// QuickPage is a user-defined bookmark shortcut shown as a tile on the
// start page.
type QuickPage struct {
	// ID is the canonical unique identifier, assigned at creation.
	ID string `json:"id"`

	// Name is the display label of the tile.
	Name string `json:"name"`

	// URL is the page the tile opens.
	URL string `json:"url"`

	// HideOnStream hides the tile while streaming mode is active.
	HideOnStream bool `json:"hideOnStream"`

	// CategoryID references an existing Category, or DefaultCategoryID.
	CategoryID string `json:"categoryId"`
}

// Category groups quick pages. Order within the collection is significant
// and user-controlled.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Reminder is a short task line with an optional due time.
type Reminder struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`

	// Time is the due time as zero-padded "HH:MM" in 24h local time,
	// or empty when the reminder has no due time.
	Time string `json:"time,omitempty"`

	HideOnStream bool `json:"hideOnStream"`
}

// MailService is a shortcut to an external mail provider.
type MailService struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Note is a sticky note. Pinned notes render in a priority group ahead of
// unpinned ones.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// Color is a hex background color, picked randomly from NotePalette
	// at creation.
	Color string `json:"color"`

	Pinned       bool `json:"pinned"`
	HideOnStream bool `json:"hideOnStream"`
}

// NotePalette is the fixed set of background colors a new note may receive.
var NotePalette = []string{"#fef3c7", "#dbeafe", "#fce7f3", "#e0e7ff", "#dcfce7"}
