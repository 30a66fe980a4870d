// Package models contains shared data structures used across the application.
package models

// BackendConfig holds how windows reach the CrewHub backend.
type BackendConfig struct {
	URL          string `yaml:"url"`            // empty = use VITE_API_URL, then the built-in default
	DevServerURL string `yaml:"dev_server_url"` // empty = default Vite dev server
}

// ControlConfig holds settings for the loopback control API.
type ControlConfig struct {
	Port int `yaml:"port"`
}

// NotificationsConfig holds OS notification settings.
type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// UpdatesConfig holds settings for update checking.
type UpdatesConfig struct {
	CheckOnStartup bool `yaml:"check_on_startup"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// Settings represents global shell settings.
// This corresponds to ~/.crewhub/settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	Backend       BackendConfig       `yaml:"backend"`
	Control       ControlConfig       `yaml:"control"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Updates       UpdatesConfig       `yaml:"updates"`
	Log           LogConfig           `yaml:"log"`
}

// DefaultControlPort is where the control API listens unless settings
// say otherwise. The backend itself defaults to 8091; the shell stays
// one above it.
const DefaultControlPort = 8092

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Control: ControlConfig{
			Port: DefaultControlPort,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
		},
		Updates: UpdatesConfig{
			CheckOnStartup: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
