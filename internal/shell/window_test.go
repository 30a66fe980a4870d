package shell

import "testing"

func TestSpecGeometry(t *testing.T) {
	tests := []struct {
		name             string
		window           WindowName
		title            string
		w, h, minW, minH int
		resizable, onTop bool
		skipTaskbar      bool
		route            string
		view             ViewMode
	}{
		{"chat", WindowChat, "CrewHub Chat", 390, 700, 320, 500, true, false, true, "", ViewMobile},
		{"world", WindowWorld, "CrewHub 3D World", 1280, 900, 900, 600, true, false, false, "", ViewDesktop},
		{"settings", WindowSettings, "CrewHub Settings", 420, 280, 0, 0, false, true, true, "?view=settings", ViewSettings},
		{"zen", WindowZen, "Zen Mode", 820, 920, 600, 500, true, false, false, "?mode=zen", ViewZen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := Spec(tt.window)
			if !ok {
				t.Fatalf("Spec(%s) missing", tt.window)
			}
			if spec.Title != tt.title {
				t.Errorf("Title = %q, want %q", spec.Title, tt.title)
			}
			if spec.Width != tt.w || spec.Height != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", spec.Width, spec.Height, tt.w, tt.h)
			}
			if spec.MinWidth != tt.minW || spec.MinHeight != tt.minH {
				t.Errorf("min size = %dx%d, want %dx%d", spec.MinWidth, spec.MinHeight, tt.minW, tt.minH)
			}
			if spec.Resizable != tt.resizable {
				t.Errorf("Resizable = %v, want %v", spec.Resizable, tt.resizable)
			}
			if spec.AlwaysOnTop != tt.onTop {
				t.Errorf("AlwaysOnTop = %v, want %v", spec.AlwaysOnTop, tt.onTop)
			}
			if spec.SkipTaskbar != tt.skipTaskbar {
				t.Errorf("SkipTaskbar = %v, want %v", spec.SkipTaskbar, tt.skipTaskbar)
			}
			if spec.Route != tt.route {
				t.Errorf("Route = %q, want %q", spec.Route, tt.route)
			}
			if spec.View != tt.view {
				t.Errorf("View = %q, want %q", spec.View, tt.view)
			}
		})
	}
}

func TestSpecUnknownWindow(t *testing.T) {
	if _, ok := Spec(WindowName("about")); ok {
		t.Error("Spec() should not know an about window")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 4 {
		t.Fatalf("Names() has %d entries, want 4", len(names))
	}
	for _, name := range names {
		if _, ok := Spec(name); !ok {
			t.Errorf("Names() lists %s but Spec() does not know it", name)
		}
	}
}

func TestParseWindowName(t *testing.T) {
	tests := []struct {
		in     string
		want   WindowName
		wantOK bool
	}{
		{"chat", WindowChat, true},
		{"world", WindowWorld, true},
		{"settings", WindowSettings, true},
		{"zen-mode", WindowZen, true},
		{"zen", WindowZen, true},
		{"dock", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run("in "+tt.in, func(t *testing.T) {
			got, ok := ParseWindowName(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseWindowName(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseWindowName(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
