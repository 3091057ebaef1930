package models

// Settings represents the application configuration
type Settings struct {
	UI     UISettings     `yaml:"ui"`
	Sync   SyncSettings   `yaml:"sync"`
	Export ExportSettings `yaml:"export"`
}

// UISettings controls editor preferences
type UISettings struct {
	ShowPreview bool `yaml:"show_preview"`
}

// SyncSettings controls how mutations are reconciled with the API
type SyncSettings struct {
	RequestTimeoutMS int `yaml:"request_timeout_ms"`
	DeleteDelayMS    int `yaml:"delete_delay_ms"` // pacing before a confirmed delete leaves the list
}

// ExportSettings controls outline export behavior
type ExportSettings struct {
	DefaultFilename string `yaml:"default_filename"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			ShowPreview: true,
		},
		Sync: SyncSettings{
			RequestTimeoutMS: 10000,
			DeleteDelayMS:    600,
		},
		Export: ExportSettings{
			DefaultFilename: "OUTLINE.md",
		},
	}
}
