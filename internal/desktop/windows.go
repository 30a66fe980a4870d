package desktop

import (
	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/EKINSOL-DEV/crewhub/internal/shell"
)

// windowHost creates webview windows for the registry. Every window
// gets a closing hook that cancels the OS close and reports the
// request back, so closing hides instead of destroying.
type windowHost struct {
	app            *application.App
	devTools       bool
	onCloseRequest func(shell.WindowName)
}

func (h *windowHost) NewWindow(spec shell.WindowSpec, url, initScript string) (shell.Window, error) {
	win := h.app.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:            string(spec.Name),
		Title:           spec.Title,
		Width:           spec.Width,
		Height:          spec.Height,
		MinWidth:        spec.MinWidth,
		MinHeight:       spec.MinHeight,
		DisableResize:   !spec.Resizable,
		AlwaysOnTop:     spec.AlwaysOnTop,
		Hidden:          true,
		URL:             url,
		JS:              initScript,
		DevToolsEnabled: h.devTools,
		Windows: application.WindowsWindow{
			HiddenOnTaskbar: spec.SkipTaskbar,
		},
	})

	win.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		e.Cancel()
		h.onCloseRequest(spec.Name)
	})

	return &hostWindow{win: win}, nil
}

// hostWindow narrows *application.WebviewWindow to the handle the
// registry drives.
type hostWindow struct {
	win *application.WebviewWindow
}

func (w *hostWindow) Show()  { w.win.Show() }
func (w *hostWindow) Focus() { w.win.Focus() }
func (w *hostWindow) Hide()  { w.win.Hide() }
