package notify

import (
	"strings"
	"testing"

	"github.com/EKINSOL-DEV/crewhub/internal/logging"
)

func TestSendRejectsEmptyTitle(t *testing.T) {
	n := New(func() bool { return false }, "", logging.NewNop())

	err := n.Send("", "body")
	if err == nil {
		t.Fatal("expected error for empty title")
	}
	if !strings.Contains(err.Error(), "title") {
		t.Errorf("error should name the title, got %q", err)
	}
}

func TestSendSuppressedWhenDisabled(t *testing.T) {
	enabled := false
	n := New(func() bool { return enabled }, "", logging.NewNop())

	// Disabled notifications succeed without touching the OS.
	if err := n.Send("Task done", "All checks passed"); err != nil {
		t.Fatalf("suppressed send should not error: %v", err)
	}
}

func TestEnabledReadPerSend(t *testing.T) {
	calls := 0
	n := New(func() bool { calls++; return false }, "", logging.NewNop())

	_ = n.Send("one", "")
	_ = n.Send("two", "")

	if calls != 2 {
		t.Errorf("enabled func called %d times, want 2", calls)
	}
}
