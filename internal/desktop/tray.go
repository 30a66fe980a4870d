package desktop

import (
	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/EKINSOL-DEV/crewhub/internal/shell"
)

// systemTray adapts the Wails tray to the badge controller.
type systemTray struct {
	tray *application.SystemTray
}

// newTray builds the tray icon, its menu, and the click wiring. Menu
// rows come from the shell table so the tray, the control API, and
// the tests stay in sync.
func newTray(app *application.App, router *shell.Router, icon []byte) *systemTray {
	tray := app.SystemTray.New()
	tray.SetIcon(icon)
	tray.SetTooltip(shell.Tooltip(0))

	menu := app.NewMenu()
	for _, entry := range shell.MenuEntries() {
		if entry.Separator {
			menu.AddSeparator()
			continue
		}
		id := entry.ID
		menu.Add(entry.Label).OnClick(func(_ *application.Context) {
			router.DispatchID(id)
		})
	}
	tray.SetMenu(menu)

	tray.OnClick(func() {
		router.TrayClicked()
	})

	return &systemTray{tray: tray}
}

func (t *systemTray) SetIcon(icon []byte) error {
	t.tray.SetIcon(icon)
	return nil
}

func (t *systemTray) SetTooltip(tooltip string) {
	t.tray.SetTooltip(tooltip)
}
