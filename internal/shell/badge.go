package shell

import (
	"errors"
	"fmt"
	"sync"
)

// ErrTrayUnavailable is returned when a badge update arrives before a
// tray icon exists (or after it failed to construct).
var ErrTrayUnavailable = errors.New("tray icon not found")

// Bucket identifies which tray icon variant is showing.
type Bucket int

const (
	BucketDefault Bucket = iota
	BucketOne
	BucketTwo
	BucketThreePlus
)

// BucketFor maps an unread count onto its icon bucket. Everything from
// three upward shares one icon.
func BucketFor(count int) Bucket {
	switch {
	case count <= 0:
		return BucketDefault
	case count == 1:
		return BucketOne
	case count == 2:
		return BucketTwo
	default:
		return BucketThreePlus
	}
}

// IconFile returns the badge icon filename for a bucket. The default
// bucket has no badge file; it restores the application icon.
func (b Bucket) IconFile() string {
	switch b {
	case BucketOne:
		return "tray-badge-1.png"
	case BucketTwo:
		return "tray-badge-2.png"
	case BucketThreePlus:
		return "tray-badge-3plus.png"
	default:
		return ""
	}
}

// Tooltip returns the tray tooltip for an unread count.
func Tooltip(count int) string {
	if count == 0 {
		return "CrewHub"
	}
	return fmt.Sprintf("CrewHub — %d unread", count)
}

// Tray is the subset of the system tray the badge controller drives.
type Tray interface {
	SetIcon(icon []byte) error
	SetTooltip(tooltip string)
}

// IconSource loads the icon bytes for a bucket.
type IconSource interface {
	Icon(b Bucket) ([]byte, error)
}

// BadgeController owns the badge count and renders it onto the tray.
// It is constructed once at startup and shared by everything that
// reports unread counts.
type BadgeController struct {
	tray  Tray
	icons IconSource

	mu           sync.Mutex
	lastReported int
}

// NewBadgeController creates a controller starting at count zero.
func NewBadgeController(tray Tray, icons IconSource) *BadgeController {
	return &BadgeController{
		tray:  tray,
		icons: icons,
	}
}

// SetBadge renders count onto the tray icon and tooltip, skipping all
// work when the count has not changed since the last call.
//
// The debounce state advances before the icon is loaded and is not
// rolled back on failure: a failed render is retried only once the
// count moves to a different value and back.
func (c *BadgeController) SetBadge(count int) error {
	if count < 0 {
		return fmt.Errorf("badge count must be non-negative, got %d", count)
	}

	c.mu.Lock()
	if c.lastReported == count {
		c.mu.Unlock()
		return nil
	}
	c.lastReported = count
	c.mu.Unlock()

	if c.tray == nil {
		return ErrTrayUnavailable
	}

	bucket := BucketFor(count)
	icon, err := c.icons.Icon(bucket)
	if err != nil {
		if bucket == BucketDefault {
			return fmt.Errorf("failed to load default icon: %w", err)
		}
		return fmt.Errorf("failed to load badge icon %q: %w", bucket.IconFile(), err)
	}

	if err := c.tray.SetIcon(icon); err != nil {
		return fmt.Errorf("failed to apply tray icon: %w", err)
	}
	c.tray.SetTooltip(Tooltip(count))
	return nil
}

// Count reports the last count handed to SetBadge, whether or not its
// render succeeded.
func (c *BadgeController) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastReported
}
