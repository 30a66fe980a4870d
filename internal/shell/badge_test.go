package shell

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

type fakeTray struct {
	mu       sync.Mutex
	icons    [][]byte
	tooltips []string
	setErr   error
}

func (t *fakeTray) SetIcon(icon []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.setErr != nil {
		return t.setErr
	}
	t.icons = append(t.icons, icon)
	return nil
}

func (t *fakeTray) SetTooltip(tooltip string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tooltips = append(t.tooltips, tooltip)
}

func (t *fakeTray) iconSwaps() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.icons)
}

func (t *fakeTray) lastTooltip() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.tooltips) == 0 {
		return ""
	}
	return t.tooltips[len(t.tooltips)-1]
}

type fakeIcons struct {
	err error
}

func (f fakeIcons) Icon(b Bucket) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(fmt.Sprintf("icon-%d", b)), nil
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		count int
		want  Bucket
	}{
		{0, BucketDefault},
		{1, BucketOne},
		{2, BucketTwo},
		{3, BucketThreePlus},
		{4, BucketThreePlus},
		{1000, BucketThreePlus},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("count %d", tt.count), func(t *testing.T) {
			if got := BucketFor(tt.count); got != tt.want {
				t.Errorf("BucketFor(%d) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}

func TestBucketIconFile(t *testing.T) {
	tests := []struct {
		bucket Bucket
		want   string
	}{
		{BucketDefault, ""},
		{BucketOne, "tray-badge-1.png"},
		{BucketTwo, "tray-badge-2.png"},
		{BucketThreePlus, "tray-badge-3plus.png"},
	}

	for _, tt := range tests {
		if got := tt.bucket.IconFile(); got != tt.want {
			t.Errorf("IconFile(%v) = %q, want %q", tt.bucket, got, tt.want)
		}
	}
}

func TestTooltip(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "CrewHub"},
		{1, "CrewHub — 1 unread"},
		{2, "CrewHub — 2 unread"},
		{47, "CrewHub — 47 unread"},
	}

	for _, tt := range tests {
		if got := Tooltip(tt.count); got != tt.want {
			t.Errorf("Tooltip(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestSetBadgeDebounces(t *testing.T) {
	tray := &fakeTray{}
	c := NewBadgeController(tray, fakeIcons{})

	// The count starts at zero, so reporting zero is already a no-op.
	if err := c.SetBadge(0); err != nil {
		t.Fatalf("SetBadge(0) failed: %v", err)
	}
	if got := tray.iconSwaps(); got != 0 {
		t.Fatalf("initial SetBadge(0) swapped %d icons, want 0", got)
	}

	// 2, 2, 0 must produce exactly two swaps.
	for _, count := range []int{2, 2, 0} {
		if err := c.SetBadge(count); err != nil {
			t.Fatalf("SetBadge(%d) failed: %v", count, err)
		}
	}
	if got := tray.iconSwaps(); got != 2 {
		t.Errorf("icon swaps = %d, want 2", got)
	}
	if got := tray.lastTooltip(); got != "CrewHub" {
		t.Errorf("final tooltip = %q, want %q", got, "CrewHub")
	}
}

func TestSetBadgeTooltipCarriesCount(t *testing.T) {
	tray := &fakeTray{}
	c := NewBadgeController(tray, fakeIcons{})

	if err := c.SetBadge(3); err != nil {
		t.Fatalf("SetBadge(3) failed: %v", err)
	}
	if got := tray.lastTooltip(); got != "CrewHub — 3 unread" {
		t.Errorf("tooltip = %q, want %q", got, "CrewHub — 3 unread")
	}

	// 3 and 1000 share a bucket but not a tooltip.
	if err := c.SetBadge(1000); err != nil {
		t.Fatalf("SetBadge(1000) failed: %v", err)
	}
	if got := tray.lastTooltip(); got != "CrewHub — 1000 unread" {
		t.Errorf("tooltip = %q, want %q", got, "CrewHub — 1000 unread")
	}
	tray.mu.Lock()
	same := string(tray.icons[0]) == string(tray.icons[1])
	tray.mu.Unlock()
	if !same {
		t.Error("counts 3 and 1000 should render the same bucket icon")
	}
}

func TestSetBadgeRejectsNegative(t *testing.T) {
	tray := &fakeTray{}
	c := NewBadgeController(tray, fakeIcons{})

	if err := c.SetBadge(-1); err == nil {
		t.Error("SetBadge(-1) should fail")
	}
	if got := c.Count(); got != 0 {
		t.Errorf("Count() = %d after rejected input, want 0", got)
	}
}

func TestSetBadgeIconFailureKeepsDebounceState(t *testing.T) {
	tray := &fakeTray{}
	c := NewBadgeController(tray, fakeIcons{err: errors.New("missing png")})

	err := c.SetBadge(2)
	if err == nil {
		t.Fatal("SetBadge(2) should surface the icon load failure")
	}
	if got := c.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2 (no rollback on failure)", got)
	}

	// The same count is now debounced even though nothing rendered.
	if err := c.SetBadge(2); err != nil {
		t.Errorf("repeated SetBadge(2) = %v, want nil (debounced)", err)
	}
	if got := tray.iconSwaps(); got != 0 {
		t.Errorf("icon swaps = %d, want 0", got)
	}
}

func TestSetBadgeApplyFailure(t *testing.T) {
	tray := &fakeTray{setErr: errors.New("tray gone")}
	c := NewBadgeController(tray, fakeIcons{})

	if err := c.SetBadge(1); err == nil {
		t.Error("SetBadge(1) should surface the tray apply failure")
	}
	if got := c.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestSetBadgeWithoutTray(t *testing.T) {
	c := NewBadgeController(nil, fakeIcons{})

	err := c.SetBadge(5)
	if !errors.Is(err, ErrTrayUnavailable) {
		t.Fatalf("SetBadge(5) = %v, want ErrTrayUnavailable", err)
	}

	// The debounce check runs before the tray lookup, so the failed
	// count is still recorded.
	if err := c.SetBadge(5); err != nil {
		t.Errorf("repeated SetBadge(5) = %v, want nil (debounced)", err)
	}
}

func TestConcurrentEqualCountsRenderOnce(t *testing.T) {
	tray := &fakeTray{}
	c := NewBadgeController(tray, fakeIcons{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.SetBadge(7)
		}()
	}
	wg.Wait()

	if got := tray.iconSwaps(); got != 1 {
		t.Errorf("icon swaps = %d, want 1", got)
	}
	if got := c.Count(); got != 7 {
		t.Errorf("Count() = %d, want 7", got)
	}
}
