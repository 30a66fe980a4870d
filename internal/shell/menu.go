package shell

import (
	"go.uber.org/zap"

	"github.com/EKINSOL-DEV/crewhub/internal/logging"
)

// MenuAction is one routed user action.
type MenuAction int

const (
	ActionOpenChat MenuAction = iota
	ActionOpenWorld
	ActionOpenZen
	ActionOpenSettings
	ActionQuit
)

// Menu identifiers as they appear in tray menu wiring and the control
// API.
const (
	MenuIDChat     = "chat"
	MenuIDWorld    = "world"
	MenuIDZen      = "zen"
	MenuIDSettings = "settings"
	MenuIDQuit     = "quit"
)

// ParseMenuAction maps a menu identifier onto its action. The second
// return is false for identifiers outside the closed set.
func ParseMenuAction(id string) (MenuAction, bool) {
	switch id {
	case MenuIDChat:
		return ActionOpenChat, true
	case MenuIDWorld:
		return ActionOpenWorld, true
	case MenuIDZen:
		return ActionOpenZen, true
	case MenuIDSettings:
		return ActionOpenSettings, true
	case MenuIDQuit:
		return ActionQuit, true
	}
	return 0, false
}

// MenuEntry describes one tray menu row.
type MenuEntry struct {
	ID        string
	Label     string
	Separator bool
}

// MenuEntries returns the tray menu in display order.
func MenuEntries() []MenuEntry {
	return []MenuEntry{
		{ID: MenuIDChat, Label: "Chat"},
		{ID: MenuIDWorld, Label: "3D World"},
		{ID: MenuIDZen, Label: "🧘 Zen Mode"},
		{ID: MenuIDSettings, Label: "⚙️ Settings"},
		{Separator: true},
		{ID: MenuIDQuit, Label: "Quit CrewHub"},
	}
}

// Router turns menu identifiers and tray clicks into registry and
// process operations.
type Router struct {
	registry *Registry
	quit     func()
	logger   *logging.Logger
}

// NewRouter creates a router. quit must terminate the process with
// exit code 0; it is the only action that ends window lifetimes.
func NewRouter(registry *Registry, quit func(), logger *logging.Logger) *Router {
	return &Router{
		registry: registry,
		quit:     quit,
		logger:   logger,
	}
}

// DispatchID routes a raw menu identifier. Unknown identifiers are
// logged and dropped; they never crash the process.
func (r *Router) DispatchID(id string) {
	action, ok := ParseMenuAction(id)
	if !ok {
		r.logger.Warn("unknown menu event", zap.String("id", id))
		return
	}
	r.Dispatch(action)
}

// Dispatch executes a menu action.
func (r *Router) Dispatch(action MenuAction) {
	switch action {
	case ActionOpenChat:
		r.registry.Open(WindowChat)
	case ActionOpenWorld:
		r.registry.Open(WindowWorld)
	case ActionOpenZen:
		r.registry.Open(WindowZen)
	case ActionOpenSettings:
		r.registry.Open(WindowSettings)
	case ActionQuit:
		r.logger.Info("quitting")
		r.quit()
	default:
		r.logger.Warn("unhandled menu action", zap.Int("action", int(action)))
	}
}

// TrayClicked handles a primary-button click on the tray icon itself,
// which opens the chat window.
func (r *Router) TrayClicked() {
	r.Dispatch(ActionOpenChat)
}
