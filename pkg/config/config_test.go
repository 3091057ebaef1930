package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/syllab/syllab-cli/pkg/models"
)

func TestLoad(t *testing.T) {
	t.Run("missing base URL", func(t *testing.T) {
		t.Setenv("SYLLAB_API_URL", "")
		if _, err := Load(); err == nil {
			t.Error("Load() should fail without SYLLAB_API_URL")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SYLLAB_API_URL", "https://cms.example")
		t.Setenv("SYLLAB_TIMEOUT_MS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.APIBaseURL != "https://cms.example" {
			t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
		}
		if cfg.RequestTimeout != 10*time.Second {
			t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
		}
	})

	t.Run("explicit timeout", func(t *testing.T) {
		t.Setenv("SYLLAB_API_URL", "https://cms.example")
		t.Setenv("SYLLAB_TIMEOUT_MS", "2500")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.RequestTimeout != 2500*time.Millisecond {
			t.Errorf("RequestTimeout = %v, want 2.5s", cfg.RequestTimeout)
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("SYLLAB_API_URL", "https://cms.example")
		t.Setenv("SYLLAB_TIMEOUT_MS", "soon")

		if _, err := Load(); err == nil {
			t.Error("Load() should reject a non-numeric timeout")
		}
	})
}

func TestReadSettings_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings() error = %v", err)
	}

	want := models.DefaultSettings()
	if settings.Sync.DeleteDelayMS != want.Sync.DeleteDelayMS {
		t.Errorf("DeleteDelayMS = %d, want %d", settings.Sync.DeleteDelayMS, want.Sync.DeleteDelayMS)
	}
	if !settings.UI.ShowPreview {
		t.Error("ShowPreview should default to true")
	}
}

func TestWriteThenReadSettings(t *testing.T) {
	t.Chdir(t.TempDir())

	settings := models.DefaultSettings()
	settings.UI.ShowPreview = false
	settings.Sync.DeleteDelayMS = 250

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings() error = %v", err)
	}

	if _, err := filepath.Glob(filepath.Join(SyllabDir, SettingsFile)); err != nil {
		t.Fatalf("settings file glob failed: %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings() error = %v", err)
	}
	if got.UI.ShowPreview {
		t.Error("ShowPreview should round-trip as false")
	}
	if got.Sync.DeleteDelayMS != 250 {
		t.Errorf("DeleteDelayMS = %d, want 250", got.Sync.DeleteDelayMS)
	}
}
