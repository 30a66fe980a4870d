package config

import (
	"os"

	"github.com/EKINSOL-DEV/crewhub/internal/models"
)

const (
	// DefaultBackendURL is where windows look for the CrewHub backend
	// when neither settings nor the environment name one.
	DefaultBackendURL = "http://localhost:8091"

	// EnvBackendURL is the environment variable the frontend build
	// also honors, kept identical so one value configures both.
	EnvBackendURL = "VITE_API_URL"

	// DefaultDevServerURL is the Vite dev server serving window content
	// in development mode.
	DefaultDevServerURL = "http://localhost:5180/"
)

// LoadSettings loads the global settings from ~/.crewhub/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.crewhub/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// BackendURL resolves the backend base URL: settings override first,
// then the environment, then the built-in default.
func BackendURL(settings *models.Settings) string {
	if settings != nil && settings.Backend.URL != "" {
		return settings.Backend.URL
	}
	if url := os.Getenv(EnvBackendURL); url != "" {
		return url
	}
	return DefaultBackendURL
}

// DevServerURL resolves the development content server base URL.
func DevServerURL(settings *models.Settings) string {
	if settings != nil && settings.Backend.DevServerURL != "" {
		return settings.Backend.DevServerURL
	}
	return DefaultDevServerURL
}
