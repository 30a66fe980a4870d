// Package shell implements the window-lifecycle and tray-state
// coordinator behind the CrewHub desktop app: which windows exist,
// whether they are visible, and what the tray badge shows. The native
// toolkit sits behind the Host, Window, and Tray interfaces.
package shell

import (
	"sync"

	"go.uber.org/zap"

	"github.com/EKINSOL-DEV/crewhub/internal/logging"
)

// Host creates OS windows. Implemented by the desktop adapter.
type Host interface {
	NewWindow(spec WindowSpec, url, initScript string) (Window, error)
}

// Window is the live handle to a created OS window. Handles are owned
// by the Registry and live until process exit.
type Window interface {
	Show()
	Focus()
	Hide()
}

// Registry owns every window handle and guarantees at most one OS
// window per name.
type Registry struct {
	host    Host
	content ContentSource
	backend func() string
	logger  *logging.Logger

	mu      sync.Mutex
	windows map[WindowName]Window
	states  map[WindowName]WindowState
}

// NewRegistry creates an empty registry. backend is consulted at
// window-construction time, not captured up front, so settings changes
// apply to windows that have not been created yet.
func NewRegistry(host Host, content ContentSource, backend func() string, logger *logging.Logger) *Registry {
	return &Registry{
		host:    host,
		content: content,
		backend: backend,
		logger:  logger,
		windows: make(map[WindowName]Window),
		states:  make(map[WindowName]WindowState),
	}
}

// Open materializes the named window: an existing handle is shown and
// focused, a missing one is constructed first. Show precedes Focus
// because some platforms drop focus requests on hidden windows.
//
// Construction failure is logged and swallowed: the window stays
// absent and the next Open retries from scratch.
func (r *Registry) Open(name WindowName) {
	r.mu.Lock()
	if w, ok := r.windows[name]; ok {
		r.states[name] = StateVisible
		r.mu.Unlock()
		w.Show()
		w.Focus()
		return
	}

	spec, ok := Spec(name)
	if !ok {
		r.mu.Unlock()
		r.logger.Warn("open requested for unknown window", zap.String("window", string(name)))
		return
	}

	// Construction happens under the lock so concurrent opens for the
	// same name build exactly one window.
	w, err := r.host.NewWindow(spec, r.content.URL(spec), InitScript(spec.View, r.backend()))
	if err != nil {
		r.mu.Unlock()
		r.logger.Error("failed to create window",
			zap.String("window", string(name)),
			zap.Error(err))
		return
	}
	r.windows[name] = w
	r.states[name] = StateVisible
	r.mu.Unlock()

	w.Show()
	w.Focus()
}
