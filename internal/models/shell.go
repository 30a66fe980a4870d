package models

import "time"

// ShellInfo represents the running shell's connection information.
// This corresponds to ~/.crewhub/shell.yaml.
type ShellInfo struct {
	Version    int       `yaml:"version"`
	Host       string    `yaml:"host"`
	Port       int       `yaml:"port"`
	PID        int       `yaml:"pid"`
	InstanceID string    `yaml:"instance_id"`
	AppVersion string    `yaml:"app_version"`
	StartedAt  time.Time `yaml:"started_at"`
}

// NewShellInfo creates shell info for the current process.
func NewShellInfo(port, pid int, instanceID, appVersion string) *ShellInfo {
	return &ShellInfo{
		Version:    1,
		Host:       "127.0.0.1",
		Port:       port,
		PID:        pid,
		InstanceID: instanceID,
		AppVersion: appVersion,
		StartedAt:  time.Now().UTC(),
	}
}
