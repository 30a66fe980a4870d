package shell

import "go.uber.org/zap"

// WindowState tracks where a window is in its lifecycle. There is no
// way back to StateAbsent while the process runs: windows are hidden
// on close, never destroyed, so heavy page content survives reopen.
type WindowState int

const (
	StateAbsent WindowState = iota
	StateVisible
	StateHidden
)

// String returns the state name for logs and the status endpoint.
func (s WindowState) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateHidden:
		return "hidden"
	default:
		return "absent"
	}
}

// CloseRequested converts an OS close request into a hide. The caller
// (the desktop adapter) has already suppressed the destroy.
func (r *Registry) CloseRequested(name WindowName) {
	r.mu.Lock()
	w, ok := r.windows[name]
	if ok {
		r.states[name] = StateHidden
	}
	r.mu.Unlock()

	if !ok {
		r.logger.Warn("close requested for untracked window", zap.String("window", string(name)))
		return
	}
	w.Hide()
}

// State reports the lifecycle state of the named window.
func (r *Registry) State(name WindowName) WindowState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[name]
}

// States reports the lifecycle state of every managed window.
func (r *Registry) States() map[WindowName]WindowState {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[WindowName]WindowState, len(specs))
	for name := range specs {
		out[name] = r.states[name]
	}
	return out
}
