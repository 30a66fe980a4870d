package shell

import (
	"errors"
	"sync"
	"testing"

	"github.com/EKINSOL-DEV/crewhub/internal/logging"
)

type fakeWindow struct {
	mu  sync.Mutex
	ops []string
}

func (w *fakeWindow) record(op string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops = append(w.ops, op)
}

func (w *fakeWindow) Show()  { w.record("show") }
func (w *fakeWindow) Focus() { w.record("focus") }
func (w *fakeWindow) Hide()  { w.record("hide") }

func (w *fakeWindow) opList() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.ops...)
}

type built struct {
	spec   WindowSpec
	url    string
	script string
	window *fakeWindow
}

type fakeHost struct {
	mu       sync.Mutex
	built    []built
	failNext error
}

func (h *fakeHost) NewWindow(spec WindowSpec, url, initScript string) (Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failNext != nil {
		err := h.failNext
		h.failNext = nil
		return nil, err
	}
	w := &fakeWindow{}
	h.built = append(h.built, built{spec: spec, url: url, script: initScript, window: w})
	return w, nil
}

func (h *fakeHost) constructions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.built)
}

func newTestRegistry(host *fakeHost) *Registry {
	return NewRegistry(host, DevServer{Base: "http://localhost:5180/"},
		func() string { return "http://localhost:8091" }, logging.NewNop())
}

func TestOpenCreatesThenShowsAndFocuses(t *testing.T) {
	host := &fakeHost{}
	r := newTestRegistry(host)

	r.Open(WindowChat)

	if got := host.constructions(); got != 1 {
		t.Fatalf("constructions = %d, want 1", got)
	}
	b := host.built[0]
	if b.spec.Title != "CrewHub Chat" {
		t.Errorf("spec.Title = %q, want %q", b.spec.Title, "CrewHub Chat")
	}
	if b.url != "http://localhost:5180/" {
		t.Errorf("url = %q, want %q", b.url, "http://localhost:5180/")
	}
	if want := InitScript(ViewMobile, "http://localhost:8091"); b.script != want {
		t.Errorf("script = %q, want %q", b.script, want)
	}
	if got := b.window.opList(); len(got) != 2 || got[0] != "show" || got[1] != "focus" {
		t.Errorf("window ops = %v, want [show focus]", got)
	}
	if got := r.State(WindowChat); got != StateVisible {
		t.Errorf("state = %v, want visible", got)
	}
}

func TestOpenIsIdempotentPerName(t *testing.T) {
	host := &fakeHost{}
	r := newTestRegistry(host)

	for i := 0; i < 5; i++ {
		r.Open(WindowWorld)
	}

	if got := host.constructions(); got != 1 {
		t.Errorf("constructions = %d, want 1", got)
	}
	if got := r.State(WindowWorld); got != StateVisible {
		t.Errorf("state = %v, want visible", got)
	}
	// Every call after the first re-shows and re-focuses the handle.
	if got := len(host.built[0].window.opList()); got != 10 {
		t.Errorf("window saw %d ops, want 10", got)
	}
}

func TestOpenRetriesAfterConstructionFailure(t *testing.T) {
	host := &fakeHost{failNext: errors.New("webview exploded")}
	r := newTestRegistry(host)

	r.Open(WindowZen)
	if got := r.State(WindowZen); got != StateAbsent {
		t.Fatalf("state after failed construction = %v, want absent", got)
	}
	if got := host.constructions(); got != 0 {
		t.Fatalf("constructions = %d, want 0", got)
	}

	// Failure is not sticky: the next open builds from scratch.
	r.Open(WindowZen)
	if got := host.constructions(); got != 1 {
		t.Errorf("constructions after retry = %d, want 1", got)
	}
	if got := r.State(WindowZen); got != StateVisible {
		t.Errorf("state after retry = %v, want visible", got)
	}
}

func TestCloseHidesButNeverDestroys(t *testing.T) {
	host := &fakeHost{}
	r := newTestRegistry(host)

	r.Open(WindowChat)
	r.CloseRequested(WindowChat)

	if got := r.State(WindowChat); got != StateHidden {
		t.Fatalf("state after close = %v, want hidden", got)
	}
	w := host.built[0].window
	if got := w.opList(); got[len(got)-1] != "hide" {
		t.Errorf("last op = %q, want hide", got[len(got)-1])
	}

	// Reopen shows the same handle; no second construction.
	r.Open(WindowChat)
	if got := host.constructions(); got != 1 {
		t.Errorf("constructions after reopen = %d, want 1", got)
	}
	if got := r.State(WindowChat); got != StateVisible {
		t.Errorf("state after reopen = %v, want visible", got)
	}
}

func TestCloseForUntrackedWindowIsHarmless(t *testing.T) {
	host := &fakeHost{}
	r := newTestRegistry(host)

	r.CloseRequested(WindowWorld)

	if got := r.State(WindowWorld); got != StateAbsent {
		t.Errorf("state = %v, want absent", got)
	}
}

func TestOpenUnknownWindowIsIgnored(t *testing.T) {
	host := &fakeHost{}
	r := newTestRegistry(host)

	r.Open(WindowName("mystery"))

	if got := host.constructions(); got != 0 {
		t.Errorf("constructions = %d, want 0", got)
	}
}

func TestConcurrentOpensConstructOnce(t *testing.T) {
	host := &fakeHost{}
	r := newTestRegistry(host)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Open(WindowSettings)
		}()
	}
	wg.Wait()

	if got := host.constructions(); got != 1 {
		t.Errorf("constructions = %d, want 1", got)
	}
}

func TestStatesCoversEveryManagedWindow(t *testing.T) {
	host := &fakeHost{}
	r := newTestRegistry(host)

	r.Open(WindowChat)
	r.Open(WindowZen)
	r.CloseRequested(WindowZen)

	states := r.States()
	if len(states) != 4 {
		t.Fatalf("States() has %d entries, want 4", len(states))
	}
	want := map[WindowName]WindowState{
		WindowChat:     StateVisible,
		WindowWorld:    StateAbsent,
		WindowSettings: StateAbsent,
		WindowZen:      StateHidden,
	}
	for name, state := range want {
		if states[name] != state {
			t.Errorf("state[%s] = %v, want %v", name, states[name], state)
		}
	}
}
