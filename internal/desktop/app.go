// Package desktop binds the shell core to the Wails v3 runtime: real
// webview windows, the system tray with its menu, and the service
// exposed to page JavaScript. Everything above this package talks to
// interfaces; everything in it talks to the toolkit.
package desktop

import (
	"io/fs"

	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/EKINSOL-DEV/crewhub/internal/logging"
	"github.com/EKINSOL-DEV/crewhub/internal/notify"
	"github.com/EKINSOL-DEV/crewhub/internal/shell"
)

// singleInstanceID keys the OS-level single-instance lock.
const singleInstanceID = "com.ekinsol.crewhub"

// Options carries everything the adapter needs from main.
type Options struct {
	Logger *logging.Logger

	// Assets is the bundled frontend served to release windows.
	Assets fs.FS

	// IconsDir is the directory holding the tray badge icons.
	IconsDir string

	// DevServerURL switches window content to the dev server when
	// non-empty and enables devtools.
	DevServerURL string

	// BackendURL resolves the backend base URL injected into pages.
	// Called at window-construction time, not captured up front.
	BackendURL func() string

	Notifier *notify.Notifier

	// OnShutdown runs once while the application exits.
	OnShutdown func()
}

// App is the running desktop shell.
type App struct {
	app      *application.App
	logger   *logging.Logger
	registry *shell.Registry
	badge    *shell.BadgeController
	router   *shell.Router
}

// New wires the Wails application, the tray, and the shell core. The
// shell lives in the tray: last-window-closed never quits, the dock
// and app switcher stay empty, and a second launch is handed to the
// running instance, which responds by opening the chat window.
func New(opts Options) *App {
	a := &App{logger: opts.Logger}

	a.app = application.New(application.Options{
		Name:        "CrewHub",
		Description: "CrewHub desktop shell",
		Icon:        appIcon,
		Services: []application.Service{
			application.NewService(&ShellService{app: a, notifier: opts.Notifier}),
		},
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(opts.Assets),
		},
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: false,
			ActivationPolicy: application.ActivationPolicyAccessory,
		},
		Windows: application.WindowsOptions{
			DisableQuitOnLastWindowClosed: true,
		},
		Linux: application.LinuxOptions{
			DisableQuitOnLastWindowClosed: true,
			ProgramName:                   "crewhub",
		},
		OnShutdown: opts.OnShutdown,
		SingleInstance: &application.SingleInstanceOptions{
			UniqueID: singleInstanceID,
			OnSecondInstanceLaunch: func(_ application.SecondInstanceData) {
				a.logger.Info("second instance launch, opening chat window")
				a.registry.Open(shell.WindowChat)
			},
		},
	})

	var content shell.ContentSource = shell.BundledAssets{}
	if opts.DevServerURL != "" {
		content = shell.DevServer{Base: opts.DevServerURL}
	}

	host := &windowHost{
		app:      a.app,
		devTools: opts.DevServerURL != "",
		onCloseRequest: func(name shell.WindowName) {
			a.registry.CloseRequested(name)
		},
	}
	a.registry = shell.NewRegistry(host, content, opts.BackendURL, opts.Logger)
	a.router = shell.NewRouter(a.registry, a.app.Quit, opts.Logger)

	tray := newTray(a.app, a.router, appIcon)
	a.badge = shell.NewBadgeController(tray, newIconSource(opts.IconsDir))

	return a
}

// Run opens the chat window and enters the UI event loop. It blocks
// until quit and must be called from the main goroutine.
func (a *App) Run() error {
	a.registry.Open(shell.WindowChat)
	return a.app.Run()
}

// Registry returns the window registry for out-of-process callers.
func (a *App) Registry() *shell.Registry { return a.registry }

// Badge returns the tray badge controller.
func (a *App) Badge() *shell.BadgeController { return a.badge }

// Quit routes through the same path as the tray menu quit item. Safe
// to call from any goroutine.
func (a *App) Quit() { a.router.Dispatch(shell.ActionQuit) }
