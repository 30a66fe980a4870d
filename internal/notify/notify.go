// Package notify sends OS notifications for the shell.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"go.uber.org/zap"

	"github.com/EKINSOL-DEV/crewhub/internal/logging"
)

func init() {
	beeep.AppName = "CrewHub"
}

// Notifier delivers notifications unless the user disabled them in
// settings. The enabled state is re-read on every send so settings
// reloads apply immediately.
type Notifier struct {
	enabled func() bool
	icon    string
	logger  *logging.Logger
}

// New creates a notifier. icon is a path to the notification icon and
// may be empty.
func New(enabled func() bool, icon string, logger *logging.Logger) *Notifier {
	return &Notifier{
		enabled: enabled,
		icon:    icon,
		logger:  logger,
	}
}

// Send shows a notification. A suppressed notification (disabled in
// settings) is success, not an error.
func (n *Notifier) Send(title, message string) error {
	if title == "" {
		return fmt.Errorf("notification title must not be empty")
	}

	if !n.enabled() {
		n.logger.Debug("notification suppressed by settings",
			zap.String("title", title))
		return nil
	}

	if err := beeep.Notify(title, message, n.icon); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}

	n.logger.Debug("notification delivered", zap.String("title", title))
	return nil
}
