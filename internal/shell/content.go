package shell

import (
	"fmt"
	"strings"
)

// ContentSource resolves where a window's content is served from. The
// shell binary picks the dev server or the bundled assets; tests
// substitute fixed sources.
type ContentSource interface {
	URL(spec WindowSpec) string
}

// DevServer serves window content from a live development server.
type DevServer struct {
	Base string
}

// URL returns the dev server URL with the window's route appended.
func (d DevServer) URL(spec WindowSpec) string {
	return strings.TrimSuffix(d.Base, "/") + "/" + spec.Route
}

// BundledAssets serves window content from the embedded frontend
// build through the application's asset server.
type BundledAssets struct{}

// URL returns the asset-server route for the window.
func (BundledAssets) URL(spec WindowSpec) string {
	return "/" + spec.Route
}

// InitScript builds the JavaScript injected before page load. The
// settings view sets only the view marker and backend URL: opening
// settings must not mark onboarding complete.
func InitScript(view ViewMode, backendURL string) string {
	if view == ViewSettings {
		return fmt.Sprintf("window.__CREWHUB_VIEW__ = 'settings'; window.__CREWHUB_BACKEND_URL__ = '%s';", backendURL)
	}
	return fmt.Sprintf("window.__CREWHUB_VIEW__ = '%s'; %s", view, baseInit(backendURL))
}

// baseInit sets the backend URL and skips onboarding (the backend
// handles the OpenClaw connection).
func baseInit(backendURL string) string {
	return fmt.Sprintf("window.__CREWHUB_BACKEND_URL__ = '%s'; localStorage.setItem('crewhub-onboarded', 'true');", backendURL)
}
