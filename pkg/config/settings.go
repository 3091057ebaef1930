package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syllab/syllab-cli/pkg/models"
)

const (
	SyllabDir    = ".syllab"
	SettingsFile = "settings.yaml"
)

// ReadSettings loads the settings file from the working directory's .syllab
// folder, falling back to defaults when the file does not exist.
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(SyllabDir, SettingsFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return settings, nil
}

// WriteSettings persists settings to the .syllab folder, creating it if
// needed.
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(SyllabDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", SyllabDir, err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	path := filepath.Join(SyllabDir, SettingsFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
