// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global CrewHub directory.
	GlobalDirName = ".crewhub"

	// LogsDirName is the name of the logs directory.
	LogsDirName = "logs"

	// ResourcesDirName is the directory next to the executable that
	// holds bundled resources (tray icons).
	ResourcesDirName = "resources"

	// IconsDirName is the icons directory within resources.
	IconsDirName = "icons"
)

// File names
const (
	ShellFileName    = "shell.yaml"
	SettingsFileName = "settings.yaml"
	ShellLogFileName = "shell.log"
)

// GlobalDir returns the path to the global CrewHub directory (~/.crewhub/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalShellFile returns the path to the shell.yaml file.
func GlobalShellFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ShellFileName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalLogsDir returns the path to the logs directory.
func GlobalLogsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsDirName), nil
}

// ShellLogFile returns the path to the shell's log file.
func ShellLogFile() (string, error) {
	dir, err := GlobalLogsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ShellLogFileName), nil
}

// ResourcesDir returns the path to the bundled resources directory.
// CREWHUB_RESOURCES overrides the default executable-relative location
// so development runs can point at the repository checkout.
func ResourcesDir() (string, error) {
	if dir := os.Getenv("CREWHUB_RESOURCES"); dir != "" {
		return dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), ResourcesDirName), nil
}

// IconsDir returns the path to the bundled icons directory.
func IconsDir() (string, error) {
	dir, err := ResourcesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, IconsDirName), nil
}

// EnsureGlobalDir creates the global CrewHub directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureGlobalLogsDir creates the global logs directory if it doesn't exist.
func EnsureGlobalLogsDir() error {
	dir, err := GlobalLogsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
