package seed

// File is the top-level structure of an optional seed YAML file. It lets
// a fresh installation start with the user's own shortcuts instead of the
// built-in samples.
type File struct {
	Theme           string        `yaml:"theme,omitempty"`
	WeatherLocation string        `yaml:"weatherLocation,omitempty"`
	QuickPages      []PageEntry   `yaml:"quickPages,omitempty"`
	Categories      []NamedEntry  `yaml:"categories,omitempty"`
	Reminders       []TaskEntry   `yaml:"reminders,omitempty"`
	MailServices    []TargetEntry `yaml:"mailServices,omitempty"`
}

// PageEntry seeds one quick page.
type PageEntry struct {
	Name         string `yaml:"name"`
	URL          string `yaml:"url"`
	Category     string `yaml:"category,omitempty"`
	HideOnStream bool   `yaml:"hideOnStream,omitempty"`
}

// NamedEntry seeds one category.
type NamedEntry struct {
	Name string `yaml:"name"`
}

// TaskEntry seeds one reminder.
type TaskEntry struct {
	Text         string `yaml:"text"`
	Time         string `yaml:"time,omitempty"`
	HideOnStream bool   `yaml:"hideOnStream,omitempty"`
}

// TargetEntry seeds one mail shortcut.
type TargetEntry struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}
