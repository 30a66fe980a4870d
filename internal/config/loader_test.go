package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EKINSOL-DEV/crewhub/internal/models"
)

func TestSaveAndLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	in := models.NewSettings()
	in.Backend.URL = "http://localhost:9999"
	in.Control.Port = 9001

	if err := SaveYAML(path, in); err != nil {
		t.Fatalf("SaveYAML() failed: %v", err)
	}

	var out models.Settings
	if err := LoadYAML(path, &out); err != nil {
		t.Fatalf("LoadYAML() failed: %v", err)
	}

	if out.Backend.URL != in.Backend.URL {
		t.Errorf("Backend.URL = %q, want %q", out.Backend.URL, in.Backend.URL)
	}
	if out.Control.Port != in.Control.Port {
		t.Errorf("Control.Port = %d, want %d", out.Control.Port, in.Control.Port)
	}
}

func TestSaveYAMLLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	if err := SaveYAML(path, models.NewSettings()); err != nil {
		t.Fatalf("SaveYAML() failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1", len(entries))
	}
}

func TestSaveYAMLCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "settings.yaml")

	if err := SaveYAML(path, models.NewSettings()); err != nil {
		t.Fatalf("SaveYAML() failed: %v", err)
	}
	if !FileExists(path) {
		t.Error("file was not created under nested directories")
	}
}

func TestLoadYAMLOrDefault(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file returns defaults", func(t *testing.T) {
		got, err := LoadYAMLOrDefault(filepath.Join(dir, "absent.yaml"), models.NewSettings)
		if err != nil {
			t.Fatalf("LoadYAMLOrDefault() failed: %v", err)
		}
		if got.Control.Port != models.DefaultControlPort {
			t.Errorf("Control.Port = %d, want %d", got.Control.Port, models.DefaultControlPort)
		}
	})

	t.Run("existing file wins over defaults", func(t *testing.T) {
		path := filepath.Join(dir, "present.yaml")
		in := models.NewSettings()
		in.Control.Port = 7777
		if err := SaveYAML(path, in); err != nil {
			t.Fatalf("SaveYAML() failed: %v", err)
		}

		got, err := LoadYAMLOrDefault(path, models.NewSettings)
		if err != nil {
			t.Fatalf("LoadYAMLOrDefault() failed: %v", err)
		}
		if got.Control.Port != 7777 {
			t.Errorf("Control.Port = %d, want 7777", got.Control.Port)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("{not: [valid"), 0644); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}

		if _, err := LoadYAMLOrDefault(path, models.NewSettings); err == nil {
			t.Error("LoadYAMLOrDefault() should fail on malformed YAML")
		}
	})
}
