package shell

// WindowName identifies one of the shell's managed windows. The string
// form is the OS window label.
type WindowName string

const (
	WindowChat     WindowName = "chat"
	WindowWorld    WindowName = "world"
	WindowSettings WindowName = "settings"
	WindowZen      WindowName = "zen-mode"
)

// ViewMode selects which logical view the page boots into.
type ViewMode string

const (
	ViewMobile   ViewMode = "mobile"
	ViewDesktop  ViewMode = "desktop"
	ViewSettings ViewMode = "settings"
	ViewZen      ViewMode = "zen"
)

// WindowSpec is the immutable per-window configuration. The set is
// fixed; windows are always created from these values.
type WindowSpec struct {
	Name      WindowName
	Title     string
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	Resizable bool

	// AlwaysOnTop keeps the window above normal windows.
	AlwaysOnTop bool

	// SkipTaskbar hides the window from the taskbar/dock.
	SkipTaskbar bool

	// Route is the query suffix appended to the content base URL.
	Route string

	// View is injected into the page before load.
	View ViewMode
}

var specs = map[WindowName]WindowSpec{
	WindowChat: {
		Name:        WindowChat,
		Title:       "CrewHub Chat",
		Width:       390,
		Height:      700,
		MinWidth:    320,
		MinHeight:   500,
		Resizable:   true,
		SkipTaskbar: true,
		View:        ViewMobile,
	},
	WindowWorld: {
		Name:      WindowWorld,
		Title:     "CrewHub 3D World",
		Width:     1280,
		Height:    900,
		MinWidth:  900,
		MinHeight: 600,
		Resizable: true,
		View:      ViewDesktop,
	},
	WindowSettings: {
		Name:        WindowSettings,
		Title:       "CrewHub Settings",
		Width:       420,
		Height:      280,
		AlwaysOnTop: true,
		SkipTaskbar: true,
		Route:       "?view=settings",
		View:        ViewSettings,
	},
	WindowZen: {
		Name:      WindowZen,
		Title:     "Zen Mode",
		Width:     820,
		Height:    920,
		MinWidth:  600,
		MinHeight: 500,
		Resizable: true,
		Route:     "?mode=zen",
		View:      ViewZen,
	},
}

// Spec returns the configuration for name.
func Spec(name WindowName) (WindowSpec, bool) {
	s, ok := specs[name]
	return s, ok
}

// Names returns the managed window names in a stable order.
func Names() []WindowName {
	return []WindowName{WindowChat, WindowWorld, WindowSettings, WindowZen}
}

// ParseWindowName maps an external identifier onto a window name.
// "zen" is accepted as an alias for the zen-mode window so callers can
// use the menu identifier.
func ParseWindowName(s string) (WindowName, bool) {
	switch s {
	case "chat":
		return WindowChat, true
	case "world":
		return WindowWorld, true
	case "settings":
		return WindowSettings, true
	case "zen", "zen-mode":
		return WindowZen, true
	}
	return "", false
}
