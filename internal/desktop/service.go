package desktop

import (
	"fmt"
	"net/url"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/EKINSOL-DEV/crewhub/internal/buildinfo"
	"github.com/EKINSOL-DEV/crewhub/internal/notify"
	"github.com/EKINSOL-DEV/crewhub/internal/shell"
)

// ShellService is bound into every window and callable from page
// JavaScript.
type ShellService struct {
	app      *App
	notifier *notify.Notifier
}

// UpdateTrayBadge sets the unread count rendered on the tray icon.
func (s *ShellService) UpdateTrayBadge(count int) error {
	if err := s.app.badge.SetBadge(count); err != nil {
		s.app.logger.Error("failed to update tray badge",
			zap.Int("count", count),
			zap.Error(err))
		return err
	}
	return nil
}

// OpenZenWindow opens or focuses the zen mode window.
func (s *ShellService) OpenZenWindow() {
	s.app.registry.Open(shell.WindowZen)
}

// OpenWindow opens any shell window by label.
func (s *ShellService) OpenWindow(name string) error {
	wn, ok := shell.ParseWindowName(name)
	if !ok {
		return fmt.Errorf("unknown window %q", name)
	}
	s.app.registry.Open(wn)
	return nil
}

// Notify shows an OS notification, subject to the settings toggle.
func (s *ShellService) Notify(title, message string) error {
	return s.notifier.Send(title, message)
}

// OpenExternal opens an http(s) URL in the default browser. Other
// schemes are rejected.
func (s *ShellService) OpenExternal(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q scheme", u.Scheme)
	}
	return browser.OpenURL(rawURL)
}

// Version reports the shell build version to the page.
func (s *ShellService) Version() string {
	return buildinfo.Version
}
