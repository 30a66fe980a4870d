// Package crewhub carries the embedded frontend bundle so it is
// available to any binary that serves windows.
package crewhub

import "embed"

// Assets is the built frontend served to release-mode windows.
// frontend/dist holds a placeholder until the web build runs.
//
//go:embed all:frontend/dist
var Assets embed.FS
