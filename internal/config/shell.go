package config

import (
	"os"
	"syscall"

	"github.com/EKINSOL-DEV/crewhub/internal/models"
)

// LoadShellInfo loads the shell connection info from ~/.crewhub/shell.yaml.
// Returns nil if the file doesn't exist.
func LoadShellInfo() (*models.ShellInfo, error) {
	path, err := GlobalShellFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.ShellInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveShellInfo saves the shell connection info to ~/.crewhub/shell.yaml.
func SaveShellInfo(info *models.ShellInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalShellFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveShellInfo removes the shell.yaml file.
func RemoveShellInfo() error {
	path, err := GlobalShellFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsShellRunning checks if the shell process is still running.
// Returns true if shell.yaml exists and the PID is alive. A stale
// file left behind by a crash is removed on the way through.
func IsShellRunning() (bool, *models.ShellInfo, error) {
	info, err := LoadShellInfo()
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}

	process, err := os.FindProcess(info.PID)
	if err != nil {
		// On Unix, FindProcess always succeeds
		return false, info, nil
	}

	// Signal 0 probes for existence without delivering anything
	if err := process.Signal(syscall.Signal(0)); err != nil {
		_ = RemoveShellInfo()
		return false, info, nil
	}

	return true, info, nil
}
